// Package model holds the wire-level records exchanged with the meetup
// backend. Field names follow the backend's JSON contract, including its
// remapped names (photoUrl, departmentName, planner_id) and its habit of
// referencing departments by name rather than id.
package model

// PersonShort is the denormalized person form embedded in meetups and invites,
// and the payload shape for profile updates.
type PersonShort struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Login      string  `json:"login"`
	Photo      *string `json:"photoUrl,omitempty"`
	Department *string `json:"departmentName,omitempty"`
}

// Person is the full person record, optionally carrying authored meetups and
// received invites.
type Person struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Login      string             `json:"login"`
	Photo      *string            `json:"photoUrl,omitempty"`
	Department *string            `json:"departmentName,omitempty"`
	Meetups    []Meetup           `json:"meetups,omitempty"`
	Invites    []InviteWithMeetup `json:"invites,omitempty"`
}

// PersonRegistration is the payload for the registration endpoint.
type PersonRegistration struct {
	ID         *int64 `json:"id,omitempty"`
	Name       string `json:"name" validate:"required,max=50"`
	Login      string `json:"login" validate:"required,min=3,login_chars"`
	Password   string `json:"password" validate:"required,min=6"`
	Department string `json:"departmentName" validate:"required"`
}

// Meetup is the short meetup form with its owning planner.
type Meetup struct {
	ID      int64       `json:"id"`
	Date    string      `json:"date"`
	Time    string      `json:"time"`
	Planner PersonShort `json:"planner"`
}

// MeetupShort is the date/time-only form used for meetup updates.
type MeetupShort struct {
	ID   *int64 `json:"id,omitempty"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// MeetupWithInvites is a meetup with its invite list expanded.
type MeetupWithInvites struct {
	ID      int64              `json:"id"`
	Date    string             `json:"date"`
	Time    string             `json:"time"`
	Planner PersonShort        `json:"planner"`
	Invites []InviteWithPerson `json:"invites,omitempty"`
}

// MeetupCreation is the creation payload. The planner travels as a bare id
// under a distinct wire name.
type MeetupCreation struct {
	ID        *int64 `json:"id,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PlannerID int64  `json:"planner_id"`
}

// Invite links one meetup to one participant. Agree is tri-state: nil means
// the participant has not responded yet.
type Invite struct {
	ID          int64       `json:"id"`
	Agree       *bool       `json:"agree"`
	Meetup      Meetup      `json:"meetup"`
	Participant PersonShort `json:"participant"`
}

// InviteCreation is the creation payload, referencing meetup and participant
// by id.
type InviteCreation struct {
	ID            *int64 `json:"id,omitempty"`
	Agree         *bool  `json:"agree"`
	MeetupID      int64  `json:"meetup_id"`
	ParticipantID int64  `json:"participant_id"`
}

// InviteWithMeetup is the invite form embedded in a person record.
type InviteWithMeetup struct {
	ID     int64  `json:"id"`
	Agree  *bool  `json:"agree"`
	Meetup Meetup `json:"meetup"`
}

// InviteWithPerson is the invite form embedded in a meetup record.
type InviteWithPerson struct {
	ID          int64       `json:"id"`
	Agree       *bool       `json:"agree"`
	Participant PersonShort `json:"participant"`
}

type Department struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name"`
}

// PageMetadata mirrors the backend's Spring-style paging envelope.
type PageMetadata struct {
	Size          int64 `json:"size"`
	Number        int64 `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
}

// PersonPage is one page of the paginated person listing.
type PersonPage struct {
	Content []Person     `json:"content"`
	Page    PageMetadata `json:"page"`
}
