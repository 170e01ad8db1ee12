package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/service"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler routes API requests to the services.
type Handler struct {
	store     store.Store
	engine    *links.Engine
	baseURL   string
	wiki      *service.WikiService
	problems  *service.ProblemService
	logs      *service.LogService
	parts     *service.PartService
	backlinks *service.BacklinkService
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/machines", h.listMachines)
	mux.HandleFunc("GET /v1/machines/{slug}", h.getMachine)
	mux.HandleFunc("GET /v1/machines/{slug}/problems", h.listMachineProblems)

	mux.HandleFunc("POST /v1/problems", h.reportProblem)
	mux.HandleFunc("GET /v1/problems/{id}", h.getProblem)
	mux.HandleFunc("GET /v1/problems/{id}/rendered", h.renderProblem)
	mux.HandleFunc("PATCH /v1/problems/{id}", h.updateProblem)
	mux.HandleFunc("DELETE /v1/problems/{id}", h.deleteProblem)

	mux.HandleFunc("POST /v1/logs", h.addLogEntry)
	mux.HandleFunc("GET /v1/logs/{id}/rendered", h.renderLogEntry)

	mux.HandleFunc("POST /v1/parts", h.createPartRequest)
	mux.HandleFunc("PATCH /v1/parts/{id}", h.updatePartRequest)
	mux.HandleFunc("POST /v1/parts/{id}/updates", h.addPartRequestUpdate)

	mux.HandleFunc("GET /v1/wiki/{slug}", h.getWikiPage)
	mux.HandleFunc("GET /v1/wiki/{slug}/edit", h.editWikiPage)
	mux.HandleFunc("PUT /v1/wiki/{slug}", h.saveWikiPage)
	mux.HandleFunc("DELETE /v1/wiki/{slug}", h.deleteWikiPage)

	mux.HandleFunc("GET /v1/backlinks/{kind}/{id}", h.listBacklinks)
	mux.HandleFunc("POST /v1/render", h.renderPreview)

	return mux
}

func (h *Handler) renderOptions(r *http.Request) links.RenderOptions {
	return links.RenderOptions{
		BaseURL:   h.baseURL,
		PlainText: r.URL.Query().Get("plain") == "1",
	}
}

func (h *Handler) listMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.store.ListMachines(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, machines)
}

func (h *Handler) getMachine(w http.ResponseWriter, r *http.Request) {
	machine, err := h.store.GetMachineBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, machine)
}

func (h *Handler) listMachineProblems(w http.ResponseWriter, r *http.Request) {
	machine, err := h.store.GetMachineBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	problems, err := h.store.ListMachineProblems(r.Context(), machine.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, problems)
}

func (h *Handler) reportProblem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MachineID   uint   `json:"machine_id"`
		ReportedBy  string `json:"reported_by"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	problem, err := h.problems.Report(r.Context(), req.MachineID, req.ReportedBy, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, problem)
}

func (h *Handler) getProblem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	problem, err := h.problems.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, problem)
}

func (h *Handler) renderProblem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rendered, err := h.problems.Render(r.Context(), id, h.renderOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"rendered": rendered})
}

func (h *Handler) updateProblem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status      string `json:"status"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Description != "" {
		if _, err := h.problems.UpdateDescription(r.Context(), id, req.Description); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.Status != "" {
		if _, err := h.problems.SetStatus(r.Context(), id, req.Status); err != nil {
			writeError(w, err)
			return
		}
	}

	problem, err := h.problems.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, problem)
}

func (h *Handler) deleteProblem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.problems.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addLogEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MachineID uint   `json:"machine_id"`
		ProblemID *uint  `json:"problem_id"`
		Author    string `json:"author"`
		Text      string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	entry, err := h.logs.AddEntry(r.Context(), req.MachineID, req.ProblemID, req.Author, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) renderLogEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rendered, err := h.logs.Render(r.Context(), id, h.renderOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"rendered": rendered})
}

func (h *Handler) createPartRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MachineID uint   `json:"machine_id"`
		Text      string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	partReq, err := h.parts.CreateRequest(r.Context(), req.MachineID, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, partReq)
}

func (h *Handler) updatePartRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	partReq, err := h.parts.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partReq)
}

func (h *Handler) addPartRequestUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	update, err := h.parts.AddUpdate(r.Context(), id, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, update)
}

func (h *Handler) getWikiPage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	page, err := h.wiki.GetPage(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	rendered, err := h.wiki.RenderPage(r.Context(), slug, h.renderOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"page": page, "rendered": rendered})
}

func (h *Handler) editWikiPage(w http.ResponseWriter, r *http.Request) {
	page, authored, err := h.wiki.EditPage(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"page": page, "content": authored})
}

func (h *Handler) saveWikiPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	page, err := h.wiki.SavePage(r.Context(), r.PathValue("slug"), req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) deleteWikiPage(w http.ResponseWriter, r *http.Request) {
	if err := h.wiki.DeletePage(r.Context(), r.PathValue("slug")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listBacklinks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	backlinks, err := h.backlinks.ListBacklinks(r.Context(), links.Kind(r.PathValue("kind")), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, backlinks)
}

// renderPreview converts and renders authored text without saving it,
// for edit-form previews. A broken slug reference fails the same way a
// save would.
func (h *Handler) renderPreview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string `json:"text"`
		Plain bool   `json:"plain"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	storageText, err := h.engine.ToStorage(r.Context(), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	rendered, err := h.engine.Render(r.Context(), storageText, links.RenderOptions{BaseURL: h.baseURL, PlainText: req.Plain})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"rendered": rendered})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var notFound *links.NotFoundError
	switch {
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": notFound.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, service.ErrMissingMachine),
		errors.Is(err, service.ErrMissingText),
		errors.Is(err, service.ErrMissingSlug),
		errors.Is(err, service.ErrUnknownKind):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		logrus.Errorf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
