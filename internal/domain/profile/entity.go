package profile

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MaxDisplayNameLength = 100
	MaxDescriptionLength = 2000
)

var (
	ErrEmptyDisplayName   = errors.New("display name is required")
	ErrDisplayNameTooLong = errors.New("display name exceeds maximum length")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
)

type Profile struct {
	userID      int64
	displayName string
	description *string
	address     *string
	phone       *string
	website     *string
}

func NewProfile(userID int64, displayName string, description, address, phone, website *string) (*Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyDisplayName
	}
	if utf8.RuneCountInString(displayName) > MaxDisplayNameLength {
		return nil, ErrDisplayNameTooLong
	}
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	return &Profile{
		userID:      userID,
		displayName: displayName,
		description: blankToNil(description),
		address:     blankToNil(address),
		phone:       blankToNil(phone),
		website:     blankToNil(website),
	}, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (p *Profile) UserID() int64        { return p.userID }
func (p *Profile) DisplayName() string  { return p.displayName }
func (p *Profile) Description() *string { return p.description }
func (p *Profile) Address() *string     { return p.address }
func (p *Profile) Phone() *string       { return p.phone }
func (p *Profile) Website() *string     { return p.website }
