package v1

import "github.com/shenikar/step_challenge_backend/internal/models"

// DTOToAccessCodeModel converts the webhook body into a domain model
func DTOToAccessCodeModel(dto RegisterAccessCodeRequest) *models.AccessCode {
	return &models.AccessCode{
		Code:          dto.AccessCode,
		CustomerEmail: dto.CustomerEmail,
		CustomerName:  dto.CustomerName,
		ProductName:   dto.ProductName,
		PurchaseID:    dto.PurchaseID,
	}
}

func ModelToAccessCodeResponse(model *models.AccessCode) *AccessCodeResponse {
	return &AccessCodeResponse{
		ID:            model.ID,
		AccessCode:    model.Code,
		CustomerEmail: model.CustomerEmail,
		ProductName:   model.ProductName,
		PurchaseID:    model.PurchaseID,
		IsUsed:        model.IsUsed,
		CreatedAt:     model.CreatedAt,
	}
}

// DTOToLocationPoint expects a validated request; a missing timestamp stays zero
func DTOToLocationPoint(dto AddFixRequest) models.LocationPoint {
	p := models.LocationPoint{
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
	}
	if dto.Timestamp != nil {
		p.Timestamp = dto.Timestamp.UTC()
	}
	return p
}

func modelToLocationResponse(p models.LocationPoint) LocationResponse {
	return LocationResponse{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Timestamp: p.Timestamp,
	}
}

func ModelToSessionResponse(model *models.WalkSession) *SessionResponse {
	resp := &SessionResponse{
		ID:         model.ID,
		UserID:     model.UserID,
		DistanceKm: model.DistanceKm,
		PointCount: model.PointCount,
		StartedAt:  model.StartedAt,
		EndedAt:    model.EndedAt,
	}
	if model.Current != nil {
		current := modelToLocationResponse(*model.Current)
		resp.Current = &current
	}
	return resp
}

func ModelToSessionUpdateResponse(model *models.SessionUpdate) *SessionUpdateResponse {
	return &SessionUpdateResponse{
		SessionID:  model.SessionID,
		Point:      modelToLocationResponse(model.Point),
		Accepted:   model.Accepted,
		DeltaKm:    model.DeltaKm,
		DistanceKm: model.DistanceKm,
	}
}

func ModelToProfileResponse(model *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:        model.UserID,
		DisplayName:   model.DisplayName,
		AvatarURL:     model.AvatarURL,
		DailyStepGoal: model.Goal(),
		CreatedAt:     model.CreatedAt,
	}
}

func ModelToStreakResponse(model *models.Streak) *StreakResponse {
	resp := &StreakResponse{
		UserID:  model.UserID,
		Current: model.Current,
		Goal:    model.Goal,
	}
	if model.LastGoalDate != nil {
		last := model.LastGoalDate.Format(dateLayout)
		resp.LastGoalDate = &last
	}
	return resp
}

func ModelsToDailyStepsResponses(days []models.DailySteps) []DailyStepsResponse {
	responses := make([]DailyStepsResponse, len(days))
	for i, d := range days {
		responses[i] = DailyStepsResponse{Date: d.Date.Format(dateLayout), Steps: d.Steps}
	}
	return responses
}

func ModelsToLeaderboardResponses(entries []models.LeaderboardEntry) []LeaderboardEntryResponse {
	responses := make([]LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = LeaderboardEntryResponse{
			Rank:        e.Rank,
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			Steps:       e.Steps,
		}
	}
	return responses
}
