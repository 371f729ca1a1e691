package lifecycle

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/model"
)

// MediaKind selects the image or document list.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaDocument MediaKind = "document"
)

// CreateInput describes a new property. Images and Documents are URLs
// already returned by the media store.
type CreateInput struct {
	Details   model.Details
	Price     decimal.Decimal
	Auction   AuctionSettings
	Images    []string
	Documents []string
}

// DetailsPatch updates descriptive fields; nil fields are left unchanged.
type DetailsPatch struct {
	Title        *string
	Description  *string
	Address      *string
	PropertyType *string
	Location     *model.Location
	Area         *float64
	Bedrooms     *int
	Bathrooms    *int
	YearBuilt    *int
	Amenities    []string
}

// ValidateDetails checks descriptive fields.
func ValidateDetails(d model.Details) error {
	if strings.TrimSpace(d.Title) == "" {
		return errs.Validation("empty title")
	}
	switch d.PropertyType {
	case model.TypeResidential, model.TypeCommercial, model.TypeLand:
	default:
		return errs.Validation("unknown property type %q", d.PropertyType)
	}
	if d.Location.Longitude < -180 || d.Location.Longitude > 180 {
		return errs.Validation("longitude out of range")
	}
	if d.Location.Latitude < -90 || d.Location.Latitude > 90 {
		return errs.Validation("latitude out of range")
	}
	if d.Area < 0 || d.Bedrooms < 0 || d.Bathrooms < 0 {
		return errs.Validation("negative area/bedrooms/bathrooms")
	}
	if d.YearBuilt != 0 && d.YearBuilt < 1800 {
		return errs.Validation("year built before 1800")
	}
	return nil
}

// NewProperty builds a pending property with an empty history at version 1.
func (m *Machine) NewProperty(owner uuid.UUID, in CreateInput) (model.Property, error) {
	if owner == uuid.Nil {
		return model.Property{}, errs.ErrUnauthorized
	}
	if err := ValidateDetails(in.Details); err != nil {
		return model.Property{}, err
	}
	if in.Price.IsNegative() {
		return model.Property{}, errs.Validation("negative price")
	}
	if err := in.Auction.Validate(m.now()); err != nil {
		return model.Property{}, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return model.Property{}, fmt.Errorf("new property id: %w", err)
	}

	now := m.now().UTC()
	p := model.Property{
		ID:               id,
		Owner:            owner,
		Details:          in.Details,
		Images:           slices.Clone(in.Images),
		Documents:        slices.Clone(in.Documents),
		Status:           model.StatusPending,
		Price:            in.Price,
		IsAuctionEnabled: in.Auction.Enabled,
		MinimumBid:       in.Auction.MinimumBid,
		History:          []model.Event{},
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	p.Amenities = slices.Clone(in.Details.Amenities)
	if in.Auction.EndTime != nil {
		t := in.Auction.EndTime.UTC()
		p.AuctionEndTime = &t
	}
	return p, nil
}

// UpdateDetails applies patch to the descriptive fields only.
func (m *Machine) UpdateDetails(p model.Property, patch DetailsPatch) (model.Mutation, error) {
	next := m.touched(p)
	d := &next.Details
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Address != nil {
		d.Address = *patch.Address
	}
	if patch.PropertyType != nil {
		d.PropertyType = *patch.PropertyType
	}
	if patch.Location != nil {
		d.Location = *patch.Location
	}
	if patch.Area != nil {
		d.Area = *patch.Area
	}
	if patch.Bedrooms != nil {
		d.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		d.Bathrooms = *patch.Bathrooms
	}
	if patch.YearBuilt != nil {
		d.YearBuilt = *patch.YearBuilt
	}
	if patch.Amenities != nil {
		d.Amenities = slices.Clone(patch.Amenities)
	}
	if err := ValidateDetails(*d); err != nil {
		return model.Mutation{}, err
	}
	return model.Mutation{Next: next}, nil
}

// AttachMedia appends uploaded URLs.
func (m *Machine) AttachMedia(p model.Property, kind MediaKind, urls []string) (model.Mutation, error) {
	if len(urls) == 0 {
		return model.Mutation{}, errs.Validation("no media")
	}
	next := m.touched(p)
	switch kind {
	case MediaImage:
		next.Images = append(next.Images, urls...)
	case MediaDocument:
		next.Documents = append(next.Documents, urls...)
	default:
		return model.Mutation{}, errs.Validation("unknown media kind %q", kind)
	}
	return model.Mutation{Next: next}, nil
}

// RemoveMedia drops url from the list selected by kind.
func (m *Machine) RemoveMedia(p model.Property, kind MediaKind, url string) (model.Mutation, error) {
	next := m.touched(p)
	var list *[]string
	switch kind {
	case MediaImage:
		list = &next.Images
	case MediaDocument:
		list = &next.Documents
	default:
		return model.Mutation{}, errs.Validation("unknown media kind %q", kind)
	}
	i := slices.Index(*list, url)
	if i < 0 {
		return model.Mutation{}, fmt.Errorf("media %q: %w", url, errs.ErrNotFound)
	}
	*list = slices.Delete(*list, i, i+1)
	return model.Mutation{Next: next}, nil
}
