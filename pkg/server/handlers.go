package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/roffman/pkg/buildinfo"
	"github.com/matzehuels/roffman/pkg/errors"
	"github.com/matzehuels/roffman/pkg/pipeline"
	"github.com/matzehuels/roffman/pkg/roff"
)

// ContentTypeRoff is the media type of rendered pages.
const ContentTypeRoff = "text/troff; charset=utf-8"

// ErrorBody is the JSON shape of error responses.
type ErrorBody struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"request_id"`
}

// ErrorDetail describes why a request failed.
type ErrorDetail struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type healthBody struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Source = body
	opts.Logger = s.logger.With("request_id", RequestIDFromContext(r.Context()))

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", ContentTypeRoff)
	h.Set("X-Roffman-Title", res.Title)
	h.Set("X-Roffman-Section", res.Number.Numeral())
	if res.CacheHit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, res.Page)
}

func (s *Server) handleEscape(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, roff.Escape(string(body)))
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return body, nil
}

// renderOptions maps query parameters onto pipeline options.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Format:   q.Get("format"),
		Filename: q.Get("filename"),
	}
	opts.Markdown.Title = q.Get("title")
	opts.Markdown.Date = q.Get("date")
	if v := q.Get("section"); v != "" {
		n, err := roff.ParseSectionNumber(v)
		if err != nil {
			return opts, invalidParam("section", err)
		}
		opts.Markdown.Number = n
	}
	for name, dst := range map[string]*bool{
		"manual_category": &opts.ManualCategory,
		"refresh":         &opts.Refresh,
	} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, invalidParam(name, err)
			}
			*dst = b
		}
	}
	return opts, nil
}

func invalidParam(name string, err error) error {
	e := errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid query parameter")
	e.Field = name
	return e
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("render failed", "request_id", RequestIDFromContext(r.Context()), "error", err)
		msg = "internal error"
	}
	writeJSON(w, status, ErrorBody{
		Error: ErrorDetail{
			Code:    string(code),
			Field:   errors.GetField(err),
			Message: msg,
		},
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case stderrors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
