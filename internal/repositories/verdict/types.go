package verdict

import "github.com/debatewise/arbiter/internal/models"

type SaveJudgementInput struct {
	Judgement *models.Judgement
}

type GetJudgementInput struct {
	SessionID string
}

type AddAppealJudgementInput struct {
	AppealJudgement *models.AppealJudgement
}

type GetAppealJudgementInput struct {
	SessionID string
}

type AddAppealInput struct {
	Appeal *models.Appeal
}

type GetAppealsBySessionInput struct {
	SessionID string
}

type GetAppealsBySessionOutput struct {
	Appeals []*models.Appeal
}
