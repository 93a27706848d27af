package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// StatusClientClosedRequest marks requests abandoned before a response was ready
const StatusClientClosedRequest = 499

type ApiResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

func sendBadRequestResponse(w http.ResponseWriter, logger *logrus.Entry, route, message string) {
	sendErrorWithCodeResponse(w, logger, route, message, http.StatusBadRequest)
}

func sendServerErrorResponse(w http.ResponseWriter, logger *logrus.Entry, route, message string) {
	sendErrorWithCodeResponse(w, logger, route, message, http.StatusInternalServerError)
}

func sendErrorWithCodeResponse(w http.ResponseWriter, logger *logrus.Entry, route, message string, errorcode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errorcode)
	response := &ApiResponse{Status: "ERROR: " + message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Errorf("error serializing json error for API %v route: %v", route, err)
	}
}

func sendOKResponse(w http.ResponseWriter, logger *logrus.Entry, route string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	response := &ApiResponse{Status: "OK", Data: data}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Errorf("error serializing json data for API %v route: %v", route, err)
	}
}
