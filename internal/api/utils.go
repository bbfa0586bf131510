package api

import (
	"encoding/json"
	"net/http"
)

const (
	statusOk    = "ok"
	statusError = "error"
)

type OkResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type ErrorResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) error {
	response, err := json.Marshal(&payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)

	return nil
}

func respondWithOk(w http.ResponseWriter, data any) error {
	return respondWithJSON(w, http.StatusOK, OkResponse{Status: statusOk, Data: data})
}

func respondWithError(w http.ResponseWriter, code int, msg string) error {
	messageBody := ErrorResponse{
		Status: statusError,
		Msg:    msg,
	}
	return respondWithJSON(w, code, messageBody)
}
