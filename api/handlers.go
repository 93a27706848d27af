package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/MinterTeam/restaking-explorer/address"
	"github.com/MinterTeam/restaking-explorer/source"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Restakers returns every restake position
func (api *Api) Restakers(w http.ResponseWriter, r *http.Request) {
	logger := requestLog(r, api.logger)
	restakers, err := api.source.FetchRestakers(r.Context())
	if err != nil {
		api.handleError(w, logger, "/restakers", err)
		return
	}
	sendOKResponse(w, logger, "/restakers", restakers)
}

// Validators returns operators with their slash history
func (api *Api) Validators(w http.ResponseWriter, r *http.Request) {
	logger := requestLog(r, api.logger)
	validators, err := api.source.FetchValidators(r.Context())
	if err != nil {
		api.handleError(w, logger, "/validators", err)
		return
	}
	sendOKResponse(w, logger, "/validators", validators)
}

// Rewards returns the reward summary of a wallet.
// A missing or short address is answered with 400.
func (api *Api) Rewards(w http.ResponseWriter, r *http.Request) {
	logger := requestLog(r, api.logger)
	wallet := mux.Vars(r)["address"]
	summary, err := api.source.FetchRewardSummary(r.Context(), wallet)
	if err != nil {
		api.handleError(w, logger.WithField("address", address.Short(wallet)), "/rewards/{address}", err)
		return
	}
	sendOKResponse(w, logger, "/rewards/{address}", summary)
}

// Overview returns aggregate statistics recomputed from fresh collections
func (api *Api) Overview(w http.ResponseWriter, r *http.Request) {
	logger := requestLog(r, api.logger)
	overview, err := source.FetchOverview(r.Context(), api.source)
	if err != nil {
		api.handleError(w, logger, "/overview", err)
		return
	}
	sendOKResponse(w, logger, "/overview", overview)
}

func (api *Api) Samples(w http.ResponseWriter, r *http.Request) {
	sendOKResponse(w, requestLog(r, api.logger), "/samples", address.SampleAddresses())
}

func (api *Api) handleError(w http.ResponseWriter, logger *logrus.Entry, route string, err error) {
	switch {
	case errors.Is(err, address.ErrInvalidAddressFormat):
		api.metrics.InvalidAddresses.Inc()
		logger.Info(err)
		sendBadRequestResponse(w, logger, route, address.ErrInvalidAddressFormat.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// client went away, the status only reaches logs and metrics
		logger.WithField("reason", err).Debug("request abandoned")
		w.WriteHeader(StatusClientClosedRequest)
	default:
		logger.Error(err)
		sendServerErrorResponse(w, logger, route, "internal error")
	}
}
