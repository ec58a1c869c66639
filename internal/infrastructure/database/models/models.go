package models

import "time"

type Building struct {
	ID     string `json:"id" gorm:"primaryKey;type:text"`
	Number string `json:"number" gorm:"type:text;uniqueIndex;not null"`
	Status string `json:"status" gorm:"type:text;not null;default:'active'"`
}

type Resident struct {
	ID         string   `json:"id" gorm:"primaryKey;type:text"`
	BuildingID string   `json:"buildingId" gorm:"type:text;not null;uniqueIndex:idx_residents_building_unit"`
	Building   Building `json:"-" gorm:"foreignKey:BuildingID;references:ID"`
	FullName   string   `json:"fullName" gorm:"type:text;not null"`
	Unit       string   `json:"unit" gorm:"type:text;not null;uniqueIndex:idx_residents_building_unit"`
	OwnerType  string   `json:"ownerType" gorm:"type:text;not null"`
	IsActive   bool     `json:"isActive" gorm:"not null;default:true"`
}

type Election struct {
	ID         string    `json:"id" gorm:"primaryKey;type:text"`
	BuildingID string    `json:"buildingId" gorm:"type:text;not null;uniqueIndex:idx_elections_building_number"`
	Building   Building  `json:"-" gorm:"foreignKey:BuildingID;references:ID"`
	Number     int       `json:"number" gorm:"not null;uniqueIndex:idx_elections_building_number"`
	StartDate  time.Time `json:"startDate" gorm:"type:timestamp with time zone;not null"`
	EndDate    time.Time `json:"endDate" gorm:"type:timestamp with time zone;not null"`
	Status     string    `json:"status" gorm:"type:text;not null;default:'scheduled'"`
	CDate      time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Nomination struct {
	ID             string    `json:"id" gorm:"primaryKey;type:text"`
	ElectionID     string    `json:"electionId" gorm:"type:text;not null;uniqueIndex:idx_nominations_election_resident"`
	Election       Election  `json:"-" gorm:"foreignKey:ElectionID;references:ID;constraint:OnDelete:CASCADE;"`
	ResidentID     string    `json:"residentId" gorm:"type:text;not null;uniqueIndex:idx_nominations_election_resident"`
	Statement      string    `json:"statement" gorm:"type:text;not null"`
	Qualifications string    `json:"qualifications" gorm:"type:text"`
	Goals          string    `json:"goals" gorm:"type:text"`
	Status         string    `json:"status" gorm:"type:text;not null;default:'pending'"`
	SubmittedAt    time.Time `json:"submittedAt" gorm:"type:timestamp with time zone;not null"`
}

// Vote carries the (election_id, resident_id) unique index that is the
// authoritative defense against double voting under concurrency.
type Vote struct {
	ID           string     `json:"id" gorm:"primaryKey;type:text"`
	ElectionID   string     `json:"electionId" gorm:"type:text;not null;uniqueIndex:idx_votes_election_resident"`
	Election     Election   `json:"-" gorm:"foreignKey:ElectionID;references:ID;constraint:OnDelete:CASCADE;"`
	ResidentID   string     `json:"residentId" gorm:"type:text;not null;uniqueIndex:idx_votes_election_resident"`
	NominationID string     `json:"nominationId" gorm:"type:text;not null;index"`
	Nomination   Nomination `json:"-" gorm:"foreignKey:NominationID;references:ID"`
	CastAt       time.Time  `json:"castAt" gorm:"type:timestamp with time zone;not null"`
}

type Winner struct {
	ID           string     `json:"id" gorm:"primaryKey;type:text"`
	ElectionID   string     `json:"electionId" gorm:"type:text;not null;uniqueIndex"`
	Election     Election   `json:"-" gorm:"foreignKey:ElectionID;references:ID;constraint:OnDelete:CASCADE;"`
	NominationID string     `json:"nominationId" gorm:"type:text;not null"`
	VoteCount    int        `json:"voteCount" gorm:"not null"`
	Status       string     `json:"status" gorm:"type:text;not null;default:'pending'"`
	ConfirmedBy  *string    `json:"confirmedBy" gorm:"type:text"`
	ConfirmedAt  *time.Time `json:"confirmedAt" gorm:"type:timestamp with time zone"`
	CDate        time.Time  `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
