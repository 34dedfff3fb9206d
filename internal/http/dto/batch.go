package dto

import (
	"fmt"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

const DateLayout = "2006-01-02"

type BatchRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Slug        *string `json:"slug,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=4000"`
	StartsOn    string  `json:"starts_on" binding:"required,datetime=2006-01-02"`
	EndsOn      string  `json:"ends_on" binding:"required,datetime=2006-01-02"`
	Status      string  `json:"status,omitempty" binding:"omitempty,oneof=upcoming active archived"`
}

func (r BatchRequest) ToInput() (model.BatchInput, error) {
	startsOn, err := time.Parse(DateLayout, r.StartsOn)
	if err != nil {
		return model.BatchInput{}, fmt.Errorf("parsing starts_on: %w", err)
	}
	endsOn, err := time.Parse(DateLayout, r.EndsOn)
	if err != nil {
		return model.BatchInput{}, fmt.Errorf("parsing ends_on: %w", err)
	}
	return model.BatchInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		StartsOn:    startsOn,
		EndsOn:      endsOn,
		Status:      model.BatchStatus(r.Status),
	}, nil
}

type CompanyRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	OneLiner *string `json:"one_liner,omitempty" binding:"omitempty,max=500"`
	Website  *string `json:"website,omitempty" binding:"omitempty,url,max=2048"`
	LogoURL  *string `json:"logo_url,omitempty" binding:"omitempty,url,max=2048"`
	BatchID  *int64  `json:"batch_id,omitempty,string"`
}

func (r CompanyRequest) ToInput() model.CompanyInput {
	return model.CompanyInput{
		Name:     r.Name,
		OneLiner: r.OneLiner,
		Website:  r.Website,
		LogoURL:  r.LogoURL,
		BatchID:  r.BatchID,
	}
}
