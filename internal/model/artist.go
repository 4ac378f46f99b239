package model

// Artist represents a performer listed in the directory.  An artist can
// appear in many shows.  Genre tags use the same delimited column
// encoding as venues.  This struct corresponds to a row in the
// `artists` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – artist or band name.
//  City               – home city.
//  State              – home state.
//  Phone              – contact phone number.
//  Genres             – delimited genre string as stored in the DB.
//  ImageLink          – URL of the artist image.
//  FacebookLink       – URL of the artist's Facebook page.
//  WebsiteLink        – URL of the artist's website.
//  SeekingVenue       – whether the artist is looking for venues to play.
//  SeekingDescription – free text shown when SeekingVenue is set.
type Artist struct {
	ID                 uint64 // artists.id
	Name               string // artists.name
	City               string // artists.city
	State              string // artists.state
	Phone              string // artists.phone
	Genres             string // artists.genres (delimited string)
	ImageLink          string // artists.image_link
	FacebookLink       string // artists.facebook_link
	WebsiteLink        string // artists.website_link
	SeekingVenue       bool   // artists.seeking_venue
	SeekingDescription string // artists.seeking_description
}
