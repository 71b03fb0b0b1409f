package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "c4ctexts/internal/platform/errors"
	pnet "c4ctexts/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]any{"objectId": "obj-9"}, "req-1")
	if status != http.StatusOK || w.StatusCode != http.StatusOK || w.Status != "OK" {
		t.Fatalf("status mismatch: %d %+v", status, w)
	}
	if w.RequestID != "req-1" || w.Data.(map[string]any)["objectId"] != "obj-9" {
		t.Fatalf("wire mismatch: %+v", w)
	}
}

func TestError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
		msg    string
	}{
		{"invalid argument", perr.InvalidArgf("ticketId is required."), http.StatusBadRequest, perr.ErrorCodeInvalidArgument, "ticketId is required."},
		{"not found", perr.NotFoundf("Ticket not found or missing ObjectID."), http.StatusNotFound, perr.ErrorCodeNotFound, "Ticket not found or missing ObjectID."},
		{"upstream", perr.Upstreamf("Upstream error 500: boom"), http.StatusBadGateway, perr.ErrorCodeUpstream, "Upstream error 500: boom"},
		{"malformed", perr.UpstreamMalformedf("Upstream response was not valid JSON."), http.StatusBadGateway, perr.ErrorCodeUpstreamMalformed, "Upstream response was not valid JSON."},
		{"foreign", errors.New("plain"), http.StatusInternalServerError, perr.ErrorCodeUnknown, "plain"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, w := pnet.Error(c.err, "rid")
			if status != c.status || w.StatusCode != c.status {
				t.Fatalf("status = %d, want %d", status, c.status)
			}
			if w.Code != c.code || w.Error != c.msg || w.RequestID != "rid" {
				t.Fatalf("wire mismatch: %+v", w)
			}
		})
	}
}

func TestError_NilIsOK(t *testing.T) {
	status, w := pnet.Error(nil, "rid")
	if status != http.StatusOK || w.Error != "" {
		t.Fatalf("nil error should give OK envelope: %d %+v", status, w)
	}
}

func TestError_CarriesField(t *testing.T) {
	_, w := pnet.Error(perr.WithField(perr.New(perr.ErrorCodeValidation, "ticketId too long"), "ticketId"), "")
	if w.Field != "ticketId" {
		t.Fatalf("field = %q, want ticketId", w.Field)
	}
}
