package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/necklace/pkg/buildinfo"
	"github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/multiset"
	"github.com/matzehuels/necklace/pkg/necklace"
	"github.com/matzehuels/necklace/pkg/pipeline"
)

// countResponse is a counting result, with representatives spelled as
// words when the request named an alphabet.
type countResponse struct {
	*pipeline.Result
	Words []string `json:"words,omitempty"`
}

// orbitResponse describes the orbit of one arrangement.
type orbitResponse struct {
	Arrangement necklace.Arrangement `json:"arrangement"`
	Group       necklace.Group       `json:"group"`
	Size        int                  `json:"size"`
	Stabilizer  int                  `json:"stabilizer"`
	Orbit       necklace.Set         `json:"orbit"`
}

// quotientResponse is the configuration set of a partition modulo a group.
type quotientResponse struct {
	Partition multiset.Partition `json:"partition"`
	Group     necklace.Group     `json:"group"`
	Configs   int64              `json:"configs"`
	Count     int                `json:"count"`
	Cosets    []necklace.Set     `json:"cosets,omitempty"`
	CacheHit  bool               `json:"cache_hit"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleNecklaces(w http.ResponseWriter, r *http.Request) {
	s.handleCount(w, r, necklace.Cyclic)
}

func (s *Server) handleBracelets(w http.ResponseWriter, r *http.Request) {
	s.handleCount(w, r, necklace.Dihedral)
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request, g necklace.Group) {
	q := r.URL.Query()
	p, alphabet, err := partitionParam(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	out := necklace.OutputNum
	if v := q.Get("output"); v != "" {
		if out, err = necklace.ParseOutput(v); err != nil {
			s.writeErr(w, r, err)
			return
		}
	}

	res, err := s.runner.Run(r.Context(), pipeline.Options{
		Partition:  p,
		Group:      g,
		Output:     out,
		MaxConfigs: s.maxConfigs,
	})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	resp := countResponse{Result: res}
	if alphabet != nil || q.Get("letters") == "true" {
		for _, rep := range res.Reps {
			resp.Words = append(resp.Words, rep.Word(alphabet))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleConfigs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, _, err := partitionParam(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	g, err := groupParam(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	cosets, err := boolParam(q.Get("cosets"))
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	out := necklace.OutputNum
	if cosets {
		out = necklace.OutputCosets
	}
	res, err := s.runner.Run(r.Context(), pipeline.Options{
		Partition:  p,
		Group:      g,
		Output:     out,
		MaxConfigs: s.maxConfigs,
	})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quotientResponse{
		Partition: p,
		Group:     g,
		Configs:   res.Stats.Configs,
		Count:     res.Count,
		Cosets:    res.Cosets,
		CacheHit:  res.CacheHit,
	})
}

func (s *Server) handleOrbit(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("arrangement")
	if raw == "" {
		s.writeErr(w, r, errors.New(errors.ErrCodeInvalidInput, "arrangement is required"))
		return
	}
	x, err := necklace.ParseArrangement(raw)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	g, err := groupParam(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	orbit, err := necklace.Orbit(x, g)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	stab, err := necklace.Stabilizer(x, g)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orbitResponse{
		Arrangement: x,
		Group:       g,
		Size:        orbit.Len(),
		Stabilizer:  stab,
		Orbit:       orbit,
	})
}

// partitionParam reads ?partition=2,3,1 or ?word=aabbbc. A word also yields
// its alphabet.
func partitionParam(r *http.Request) (multiset.Partition, []rune, error) {
	q := r.URL.Query()
	if word := q.Get("word"); word != "" {
		return multiset.FromWord(word)
	}
	raw := q.Get("partition")
	if raw == "" {
		return nil, nil, errors.New(errors.ErrCodeInvalidPartition, "partition or word is required")
	}
	p, err := multiset.Parse(raw)
	return p, nil, err
}

// groupParam reads ?group=, defaulting to Cn.
func groupParam(r *http.Request) (necklace.Group, error) {
	v := r.URL.Query().Get("group")
	if v == "" {
		return pipeline.DefaultGroup, nil
	}
	return necklace.ParseGroup(v)
}

func boolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid boolean %q", v)
	}
	return b, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFrom(r.Context()), "path", r.URL.Path, "error", err)
		if code == "" {
			code = string(errors.ErrCodeInternal)
		}
		msg = "internal error"
	}
	writeError(w, status, code, msg)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
