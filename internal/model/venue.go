package model

// Venue represents a bookable location listed in the directory.  A venue
// can host many shows.  Genre tags are persisted in the `genres` column
// as a single delimited string; DecodeGenres/EncodeGenres translate
// between that column and the ordered tag list used everywhere else.
// This struct corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – venue name shown in listings and search.
//  City               – city used for locale grouping.
//  State              – state used for locale grouping.
//  Address            – street address.
//  Phone              – contact phone number.
//  Genres             – delimited genre string as stored in the DB.
//  ImageLink          – URL of the venue image.
//  FacebookLink       – URL of the venue's Facebook page.
//  WebsiteLink        – URL of the venue's website.
//  SeekingTalent      – whether the venue is looking for artists to book.
//  SeekingDescription – free text shown when SeekingTalent is set.
type Venue struct {
	ID                 uint64 // venues.id
	Name               string // venues.name
	City               string // venues.city
	State              string // venues.state
	Address            string // venues.address
	Phone              string // venues.phone
	Genres             string // venues.genres (delimited string)
	ImageLink          string // venues.image_link
	FacebookLink       string // venues.facebook_link
	WebsiteLink        string // venues.website_link
	SeekingTalent      bool   // venues.seeking_talent
	SeekingDescription string // venues.seeking_description
}
