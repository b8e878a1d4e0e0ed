package entity

import "time"

// ContentSettingsID is the key of the singleton row
const ContentSettingsID = "site"

type ContentSettings struct {
	HeroHeadline    string    `db:"hero_headline" json:"heroHeadline"`
	HeroSubheadline string    `db:"hero_subheadline" json:"heroSubheadline"`
	ContactEmail    string    `db:"contact_email" json:"contactEmail"`
	ContactPhone    string    `db:"contact_phone" json:"contactPhone"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Merge keeps stored values for fields left empty in the update
func (c *ContentSettings) Merge(in ContentSettings) {
	if in.HeroHeadline != "" {
		c.HeroHeadline = in.HeroHeadline
	}
	if in.HeroSubheadline != "" {
		c.HeroSubheadline = in.HeroSubheadline
	}
	if in.ContactEmail != "" {
		c.ContactEmail = in.ContactEmail
	}
	if in.ContactPhone != "" {
		c.ContactPhone = in.ContactPhone
	}
}
