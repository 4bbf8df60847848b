package checkapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mailaddr"
)

type validateRequest struct {
	Email string `json:"email"`
}

// verdict is the per-address result shared by the single and batch
// endpoints. Email and Normalized stay absent unless structurally valid.
type verdict struct {
	Input      string         `json:"input"`
	Valid      bool           `json:"valid"`
	Email      mailaddr.Email `json:"email,omitzero"`
	Normalized mailaddr.Email `json:"normalized,omitzero"`
	Error      string         `json:"error,omitempty"`
}

// checkAddress runs the checked constructor and, for rejected input, tries
// the opt-in normalization as a repair suggestion.
func checkAddress(s string) verdict {
	email, err := mailaddr.New(s)
	if err != nil {
		v := verdict{Input: s, Error: err.Error()}
		if normalized, nerr := mailaddr.NewNormalized(s); nerr == nil {
			v.Normalized = normalized
		}
		return v
	}
	return verdict{Input: s, Valid: true, Email: email}
}

func handleValidate(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validateRequest
		if err := decodeJSON(r, &req); err != nil {
			respondDecodeError(w, err)
			return
		}

		v := checkAddress(req.Email)
		log.DebugContext(r.Context(), "address validated", slog.Bool("valid", v.Valid))

		status := http.StatusOK
		if !v.Valid {
			status = http.StatusUnprocessableEntity
		}
		respondJSON(w, status, v)
	}
}

type batchResponse struct {
	Results []verdict `json:"results"`
	Valid   int       `json:"valid"`
	Invalid int       `json:"invalid"`
}

func handleValidateBatch(log *slog.Logger, maxBatchSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var inputs []string
		if err := decodeJSON(r, &inputs); err != nil {
			respondDecodeError(w, err)
			return
		}
		// A JSON null body decodes into a nil slice without error.
		if inputs == nil {
			respondDecodeError(w, fmt.Errorf("%w: expected a json array of addresses", ErrInvalidJSON))
			return
		}
		if maxBatchSize > 0 && len(inputs) > maxBatchSize {
			respondJSON(w, http.StatusBadRequest, errorResponse{
				Error: fmt.Sprintf("batch of %d exceeds the limit of %d", len(inputs), maxBatchSize),
			})
			return
		}

		resp := batchResponse{Results: make([]verdict, len(inputs))}
		for i, s := range inputs {
			resp.Results[i] = checkAddress(s)
			if resp.Results[i].Valid {
				resp.Valid++
			} else {
				resp.Invalid++
			}
		}
		log.DebugContext(r.Context(), "batch validated",
			slog.Int("total", len(inputs)),
			slog.Int("valid", resp.Valid),
		)
		respondJSON(w, http.StatusOK, resp)
	}
}

type aboutResponse struct {
	Service string         `json:"service"`
	Contact mailaddr.Email `json:"contact"`
}

func handleAbout(contact mailaddr.Email) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, aboutResponse{
			Service: "mailcheckd",
			Contact: contact,
		})
	}
}
