package fittrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/fittrack/rehab"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// opErrorPrefixes are the per-operation error message prefixes surfaced to
// callers (REST body text, MCP IsError text).
var opErrorPrefixes = map[Operation]string{
	OpLogWorkout:         "Error logging workout: ",
	OpCalculateHydration: "Error calculating hydration: ",
	OpLogNutrition:       "Error logging nutrition: ",
	OpGetExerciseLibrary: "Error retrieving exercise library: ",
	OpGetRehabProtocol:   "Error retrieving rehab protocol: ",
}

// OpErrorMessage wraps an operation failure in its fixed caller-facing prefix.
func OpErrorMessage(op Operation, err error) string {
	if prefix, ok := opErrorPrefixes[op]; ok {
		return prefix + err.Error()
	}
	return fmt.Sprintf("Error in %s: %s", op, err.Error())
}

// Handler exposes the five operations over HTTP. It only frames: decode the
// input object, call the ops service, write the returned string.
type Handler struct {
	service     *Service
	versionInfo string
}

func NewHandler(service *Service, versionInfo string) *Handler {
	return &Handler{
		service:     service,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleVersion).Methods("GET").Name("version")

	mainRouter.HandleFunc("/fittrack/workout", handler.handleLogWorkout).Methods("POST", "OPTIONS").Name("log-workout")
	mainRouter.HandleFunc("/fittrack/hydration", handler.handleCalculateHydration).Methods("POST", "OPTIONS").Name("calculate-hydration")
	mainRouter.HandleFunc("/fittrack/nutrition", handler.handleLogNutrition).Methods("POST", "OPTIONS").Name("log-nutrition")
	mainRouter.HandleFunc("/fittrack/library", handler.handleGetExerciseLibrary).Methods("GET", "OPTIONS").Name("exercise-library")
	mainRouter.HandleFunc("/fittrack/rehab/{condition}", handler.handleGetRehabProtocol).Methods("GET", "OPTIONS").Name("rehab-protocol")
	mainRouter.HandleFunc("/fittrack/operations", handler.handleOperations).Methods("GET").Name("operations")
	mainRouter.HandleFunc("/fittrack/op/{operation}", handler.handleDispatch).Methods("POST", "OPTIONS").Name("dispatch")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleOperations(w http.ResponseWriter, _ *http.Request) {
	raw, err := json.Marshal(Operations())
	if err != nil {
		http.Error(w, "encode operations", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(raw))
}

func (handler *Handler) handleLogWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fittrack.logWorkout")
	defer span.End()

	var in LogWorkoutInput
	if !decodeBody(w, r, &in) {
		return
	}
	out, err := handler.service.LogWorkout(ctx, in)
	writeOpResult(w, OpLogWorkout, in.ResponseFormat, out, err)
}

func (handler *Handler) handleCalculateHydration(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fittrack.calculateHydration")
	defer span.End()

	var in CalculateHydrationInput
	if !decodeBody(w, r, &in) {
		return
	}
	out, err := handler.service.CalculateHydration(ctx, in)
	writeOpResult(w, OpCalculateHydration, in.ResponseFormat, out, err)
}

func (handler *Handler) handleLogNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fittrack.logNutrition")
	defer span.End()

	var in LogNutritionInput
	if !decodeBody(w, r, &in) {
		return
	}
	out, err := handler.service.LogNutrition(ctx, in)
	writeOpResult(w, OpLogNutrition, in.ResponseFormat, out, err)
}

func (handler *Handler) handleGetExerciseLibrary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fittrack.getExerciseLibrary")
	defer span.End()

	in := GetExerciseLibraryInput{
		Category:       ExerciseCategory(r.URL.Query().Get("category")),
		SearchTerm:     r.URL.Query().Get("search"),
		ResponseFormat: ResponseFormat(r.URL.Query().Get("format")),
	}
	out, err := handler.service.GetExerciseLibrary(ctx, in)
	writeOpResult(w, OpGetExerciseLibrary, in.ResponseFormat, out, err)
}

func (handler *Handler) handleGetRehabProtocol(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fittrack.getRehabProtocol")
	defer span.End()

	in := GetRehabProtocolInput{
		Condition:      mux.Vars(r)["condition"],
		ResponseFormat: ResponseFormat(r.URL.Query().Get("format")),
	}
	if phaseParam := r.URL.Query().Get("phase"); phaseParam != "" {
		phase, err := strconv.Atoi(phaseParam)
		if err != nil {
			pkg.WriteResponse(w, pkg.ContentType.Text,
				OpErrorMessage(OpGetRehabProtocol, fmt.Errorf("invalid phase: %s", phaseParam)),
				http.StatusBadRequest,
			)
			return
		}
		in.Phase = &phase
	}

	out, err := handler.service.GetRehabProtocol(ctx, in)
	writeOpResult(w, OpGetRehabProtocol, in.ResponseFormat, out, err)
}

func (handler *Handler) handleDispatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fittrack.dispatch")
	defer span.End()

	op := Operation(mux.Vars(r)["operation"])
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		log.Errorf("dispatch %s: read body: %s", op, err)
		http.Error(w, "read request body", http.StatusInternalServerError)
		return
	}

	out, err := handler.service.Dispatch(ctx, op, raw)
	// the dispatched input owns its response_format, so the content type is
	// derived from the result instead of a decoded input field
	format := FormatMarkdown
	if json.Valid([]byte(out)) {
		format = FormatJSON
	}
	writeOpResult(w, op, format, out, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, in any) bool {
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		http.Error(w, fmt.Sprintf("decode request: %s", err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeOpResult(w http.ResponseWriter, op Operation, format ResponseFormat, out string, err error) {
	if err != nil {
		pkg.WriteResponse(w, pkg.ContentType.Text, OpErrorMessage(op, err), errStatusCode(err))
		return
	}
	if format == FormatJSON {
		pkg.WriteJSONResponseOK(w, out)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.Markdown, out, http.StatusOK)
}

func errStatusCode(err error) int {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, rehab.ErrPhaseOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, rehab.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
