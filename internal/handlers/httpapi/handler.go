package httpapi

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/debatewise/arbiter/internal/events"
	"github.com/debatewise/arbiter/internal/services/debate"
	"github.com/debatewise/arbiter/internal/storage/images"
)

// HandlerError is a custom error type for handler construction errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        HandlerError = "config cannot be nil"
	ErrNilDebateService HandlerError = "debate service cannot be nil"
	ErrNilImageStore    HandlerError = "image store cannot be nil"
	ErrNilRegistry      HandlerError = "registry cannot be nil"
)

// Handler serves the session lifecycle over HTTP and websocket
type Handler struct {
	debateService debate.Service
	imageStore    images.Store
	registry      *events.Registry
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DebateService == nil {
		return nil, ErrNilDebateService
	}

	if cfg.ImageStore == nil {
		return nil, ErrNilImageStore
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	return &Handler{
		debateService: cfg.DebateService,
		imageStore:    cfg.ImageStore,
		registry:      cfg.Registry,
	}, nil
}

// Register mounts all routes onto the app
func (h *Handler) Register(app *fiber.App) {
	sessions := app.Group("/sessions")
	sessions.Post("/", h.CreateSession)
	sessions.Get("/:id", h.GetSession)
	sessions.Patch("/:id/participants/:slot", h.RenameParticipant)
	sessions.Post("/:id/arguments/", h.SubmitArgument)
	sessions.Post("/:id/appeal/", h.SubmitAppeal)

	h.registerWebsocket(app)
}

// CreateSession handles POST /sessions/
func (h *Handler) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "name is required"})
	}

	output, err := h.debateService.CreateSession(c.Context(), &debate.CreateSessionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(output.Session)
}

// GetSession handles GET /sessions/:id. A requester_id query
// parameter claims an open slot for the requester before the read, so
// the first two distinct visitors become the debaters.
func (h *Handler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	_, err := h.debateService.BindParticipant(c.Context(), &debate.BindParticipantInput{
		SessionID:   sessionID,
		RequesterID: c.Query("requester_id"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	output, err := h.debateService.GetSession(c.Context(), &debate.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(output.View)
}

// RenameParticipant handles PATCH /sessions/:id/participants/:slot
func (h *Handler) RenameParticipant(c *fiber.Ctx) error {
	slot, err := c.ParamsInt("slot")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid slot"})
	}

	var req renameParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	if req.RequesterID == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "requester_id and name are required"})
	}

	output, err := h.debateService.RenameParticipant(c.Context(), &debate.RenameParticipantInput{
		SessionID:   c.Params("id"),
		Slot:        slot,
		RequesterID: req.RequesterID,
		NewName:     req.Name,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(output.Session)
}

// SubmitArgument handles POST /sessions/:id/arguments/ as a multipart
// form: content, requester_id, optional display_name, optional image
// file
func (h *Handler) SubmitArgument(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	requesterID := c.FormValue("requester_id")
	content := c.FormValue("content")

	if requesterID == "" || content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "requester_id and content are required"})
	}

	// The submitter must hold a slot; binding here lets a debater who
	// never hit the read endpoint still claim one.
	bindOut, err := h.debateService.BindParticipant(c.Context(), &debate.BindParticipantInput{
		SessionID:   sessionID,
		RequesterID: requesterID,
	})
	if err != nil {
		return h.serviceError(c, err)
	}
	if bindOut.Slot == 0 {
		return c.Status(fiber.StatusForbidden).JSON(errorResponse{Error: "only debate participants can submit arguments"})
	}

	displayName := c.FormValue("display_name")
	if displayName == "" {
		displayName = bindOut.Session.NameFor(requesterID)
	}

	imageURL, err := h.saveImage(c)
	if err != nil {
		log.Printf("httpapi: failed to store argument image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to store image"})
	}

	output, err := h.debateService.SubmitArgument(c.Context(), &debate.SubmitArgumentInput{
		SessionID:       sessionID,
		ParticipantID:   requesterID,
		ParticipantName: displayName,
		Content:         content,
		ImageURL:        imageURL,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(output)
}

// SubmitAppeal handles POST /sessions/:id/appeal/
func (h *Handler) SubmitAppeal(c *fiber.Ctx) error {
	var req submitAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	if req.RequesterID == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "requester_id and content are required"})
	}

	output, err := h.debateService.SubmitAppeal(c.Context(), &debate.SubmitAppealInput{
		SessionID:   c.Params("id"),
		AppellantID: req.RequesterID,
		Content:     req.Content,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(output)
}

// saveImage stores an optional multipart image file and returns its
// public URL. No file is not an error.
func (h *Handler) saveImage(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// fiber returns an error for a missing form file
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", nil
	}

	output, err := h.imageStore.Save(c.Context(), &images.SaveInput{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return "", err
	}

	return output.URL, nil
}

// serviceError maps service errors to HTTP statuses: not-found to
// 404, authorization failures to 403, precondition failures to 400,
// anything else to 500.
func (h *Handler) serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, debate.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: err.Error()})
	case errors.Is(err, debate.ErrNotSlotOwner),
		errors.Is(err, debate.ErrNotTheLoser):
		return c.Status(fiber.StatusForbidden).JSON(errorResponse{Error: err.Error()})
	case errors.Is(err, debate.ErrInvalidSlot),
		errors.Is(err, debate.ErrNoJudgement),
		errors.Is(err, debate.ErrAlreadyAppealed):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
	default:
		log.Printf("httpapi: internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal server error"})
	}
}
