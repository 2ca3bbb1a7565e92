package argument

import "github.com/debatewise/arbiter/internal/models"

type AddArgumentInput struct {
	Argument *models.Argument
}

type GetArgumentsBySessionInput struct {
	SessionID string
}

type GetArgumentsBySessionOutput struct {
	Arguments []*models.Argument
}

type CountBySessionInput struct {
	SessionID string
}
