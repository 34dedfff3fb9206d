package model

import "time"

type BatchStatus string

const (
	BatchStatusUpcoming BatchStatus = "upcoming"
	BatchStatusActive   BatchStatus = "active"
	BatchStatusArchived BatchStatus = "archived"
)

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusUpcoming, BatchStatusActive, BatchStatusArchived:
		return true
	}
	return false
}

type Batch struct {
	ID          int64       `json:"id,string"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description *string     `json:"description,omitempty"`
	StartsOn    time.Time   `json:"starts_on"`
	EndsOn      time.Time   `json:"ends_on"`
	Status      BatchStatus `json:"status"`
	MemberCount int64       `json:"member_count"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type Company struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	OneLiner  *string   `json:"one_liner,omitempty"`
	Website   *string   `json:"website,omitempty"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	BatchID   *int64    `json:"batch_id,omitempty,string"`
	Founders  []User    `json:"founders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BatchInput struct {
	Name        string
	Slug        *string
	Description *string
	StartsOn    time.Time
	EndsOn      time.Time
	Status      BatchStatus
}

type CompanyInput struct {
	Name     string
	OneLiner *string
	Website  *string
	LogoURL  *string
	BatchID  *int64
}

// Roster is a batch with its members and their companies, used for exports.
type Roster struct {
	Batch     Batch
	Members   []User
	Companies map[int64]Company
}
