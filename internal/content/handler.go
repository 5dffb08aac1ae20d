// Mr_Evra | 2025
// handler.go

package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mr-evra/portfolio-api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the unauthenticated portfolio read.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/portfolio", h.GetPortfolio)
}

// RegisterAdminRoutes mounts the CRUD surface. The caller wraps the
// router in the authenticator and admin-role middleware.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/dashboard", h.Dashboard)

	r.Put("/hero", h.UpsertHero)
	r.Put("/about", h.UpsertAbout)

	r.Route("/skill-categories", func(r chi.Router) {
		r.Get("/", h.ListSkillCategories)
		r.Post("/", h.CreateSkillCategory)
		r.Get("/{id}", h.GetSkillCategory)
		r.Put("/{id}", h.UpdateSkillCategory)
		r.Delete("/{id}", h.DeleteSkillCategory)
	})

	r.Route("/skills", func(r chi.Router) {
		r.Post("/", h.CreateSkill)
		r.Get("/{id}", h.GetSkill)
		r.Put("/{id}", h.UpdateSkill)
		r.Delete("/{id}", h.DeleteSkill)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.ListProjects)
		r.Post("/", h.CreateProject)
		r.Get("/{id}", h.GetProject)
		r.Put("/{id}", h.UpdateProject)
		r.Delete("/{id}", h.DeleteProject)
	})

	r.Route("/hackathons", func(r chi.Router) {
		r.Get("/", h.ListHackathons)
		r.Post("/", h.CreateHackathon)
		r.Get("/{id}", h.GetHackathon)
		r.Put("/{id}", h.UpdateHackathon)
		r.Delete("/{id}", h.DeleteHackathon)
	})
}

func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.PublicView(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, view)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.DashboardCounts(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, counts)
}

func (h *Handler) UpsertHero(w http.ResponseWriter, r *http.Request) {
	var payload HeroPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	writeResult(w, h.service.UpsertHero(r.Context(), payload), http.StatusOK)
}

func (h *Handler) UpsertAbout(w http.ResponseWriter, r *http.Request) {
	var payload AboutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	writeResult(w, h.service.UpsertAbout(r.Context(), payload), http.StatusOK)
}

func (h *Handler) ListSkillCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.CategoriesWithSkills(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, categories)
}

func (h *Handler) CreateSkillCategory(w http.ResponseWriter, r *http.Request) {
	var payload SkillCategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	writeResult(
		w,
		h.service.CreateSkillCategory(r.Context(), payload),
		http.StatusCreated,
	)
}

func (h *Handler) GetSkillCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := h.service.GetSkillCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "skill category")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, cat)
}

func (h *Handler) UpdateSkillCategory(w http.ResponseWriter, r *http.Request) {
	var payload SkillCategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	result := h.service.UpdateSkillCategory(
		r.Context(),
		chi.URLParam(r, "id"),
		payload,
	)
	writeResult(w, result, http.StatusOK)
}

func (h *Handler) DeleteSkillCategory(w http.ResponseWriter, r *http.Request) {
	result := h.service.DeleteSkillCategory(r.Context(), chi.URLParam(r, "id"))
	writeResult(w, result, http.StatusOK)
}

func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var payload SkillPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	writeResult(
		w,
		h.service.CreateSkill(r.Context(), payload),
		http.StatusCreated,
	)
}

func (h *Handler) GetSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := h.service.GetSkill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "skill")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, skill)
}

func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	var payload SkillPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	result := h.service.UpdateSkill(r.Context(), chi.URLParam(r, "id"), payload)
	writeResult(w, result, http.StatusOK)
}

func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	result := h.service.DeleteSkill(r.Context(), chi.URLParam(r, "id"))
	writeResult(w, result, http.StatusOK)
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.AdminProjects(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, projects)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var payload ProjectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	writeResult(
		w,
		h.service.CreateProject(r.Context(), payload),
		http.StatusCreated,
	)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "project")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, project)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var payload ProjectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	result := h.service.UpdateProject(
		r.Context(),
		chi.URLParam(r, "id"),
		payload,
	)
	writeResult(w, result, http.StatusOK)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	result := h.service.DeleteProject(r.Context(), chi.URLParam(r, "id"))
	writeResult(w, result, http.StatusOK)
}

func (h *Handler) ListHackathons(w http.ResponseWriter, r *http.Request) {
	hackathons, err := h.service.AdminHackathons(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, hackathons)
}

func (h *Handler) CreateHackathon(w http.ResponseWriter, r *http.Request) {
	var payload HackathonPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	writeResult(
		w,
		h.service.CreateHackathon(r.Context(), payload),
		http.StatusCreated,
	)
}

func (h *Handler) GetHackathon(w http.ResponseWriter, r *http.Request) {
	hackathon, err := h.service.GetHackathon(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "hackathon")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, hackathon)
}

func (h *Handler) UpdateHackathon(w http.ResponseWriter, r *http.Request) {
	var payload HackathonPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	result := h.service.UpdateHackathon(
		r.Context(),
		chi.URLParam(r, "id"),
		payload,
	)
	writeResult(w, result, http.StatusOK)
}

func (h *Handler) DeleteHackathon(w http.ResponseWriter, r *http.Request) {
	result := h.service.DeleteHackathon(r.Context(), chi.URLParam(r, "id"))
	writeResult(w, result, http.StatusOK)
}

// writeResult serializes a MutationResult as-is: the uniform
// {success, error?, code?, id?} shape is the wire contract for every
// write, failures included.
func writeResult(
	w http.ResponseWriter,
	result MutationResult,
	successStatus int,
) {
	status := successStatus
	if !result.Success {
		status = statusForCode(result.Code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errcheck // response already committed
	_ = json.NewEncoder(w).Encode(result)
}

func statusForCode(code string) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
