package lifecycle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/model"
)

// TokenInput carries the externally issued token identifiers.
type TokenInput struct {
	TokenID         string
	ContractAddress string
	TokenURI        string
	TransactionHash string
}

// Validate checks token identifiers. The transaction hash is opaque and not checked.
func (in TokenInput) Validate() error {
	if in.TokenID == "" {
		return errs.Validation("empty token id")
	}
	if !common.IsHexAddress(in.ContractAddress) {
		return errs.Validation("bad contract address %q", in.ContractAddress)
	}
	if in.TokenURI == "" {
		return errs.Validation("empty token uri")
	}
	return nil
}

// ListInput sets the asking price.
type ListInput struct {
	Price           decimal.Decimal
	TransactionHash string
}

// Validate checks the asking price.
func (in ListInput) Validate() error {
	if in.Price.IsNegative() {
		return errs.Validation("negative price")
	}
	return nil
}

// TransferInput moves ownership to To.
type TransferInput struct {
	To              uuid.UUID
	Price           decimal.Decimal
	TransactionHash string
}

// Validate checks the counterparty and price.
func (in TransferInput) Validate() error {
	if in.To == uuid.Nil {
		return errs.Validation("empty new owner")
	}
	if in.Price.IsNegative() {
		return errs.Validation("negative price")
	}
	return nil
}

// Tokenize marks p as backed by a token. One-way: there is no detokenize.
func (m *Machine) Tokenize(p model.Property, in TokenInput) (model.Mutation, error) {
	if err := in.Validate(); err != nil {
		return model.Mutation{}, err
	}
	if p.IsTokenized {
		return model.Mutation{}, errs.ErrAlreadyTokenized
	}

	next := m.touched(p)
	next.IsTokenized = true
	next.TokenID = in.TokenID
	next.ContractAddress = in.ContractAddress
	next.TokenURI = in.TokenURI
	next.Status = model.StatusTokenized
	next.NFTMetadata = m.nftMetadata(p)

	ev := m.event(model.EventTokenize, p, in.TransactionHash)
	return model.Mutation{Next: next, Event: &ev}, nil
}

// List puts a tokenized property up for sale at in.Price.
func (m *Machine) List(p model.Property, in ListInput) (model.Mutation, error) {
	if err := in.Validate(); err != nil {
		return model.Mutation{}, err
	}
	if !p.IsTokenized {
		return model.Mutation{}, errs.ErrNotTokenized
	}
	if p.Status == model.StatusListed {
		return model.Mutation{}, errs.ErrAlreadyListed
	}

	next := m.touched(p)
	next.Status = model.StatusListed
	next.Price = in.Price

	ev := m.event(model.EventList, next, in.TransactionHash)
	return model.Mutation{Next: next, Event: &ev}, nil
}

// Unlist withdraws a listed property.
func (m *Machine) Unlist(p model.Property, evidence string) (model.Mutation, error) {
	if p.Status != model.StatusListed {
		return model.Mutation{}, errs.ErrNotListed
	}

	next := m.touched(p)
	next.Status = model.StatusUnlisted

	ev := m.event(model.EventUnlist, next, evidence)
	return model.Mutation{Next: next, Event: &ev}, nil
}

// Transfer hands ownership to in.To and marks the property sold.
// A transfer after an elapsed (or open-ended) auction closes it and is recorded as a sale.
func (m *Machine) Transfer(p model.Property, in TransferInput) (model.Mutation, error) {
	if err := in.Validate(); err != nil {
		return model.Mutation{}, err
	}
	if in.To == p.Owner {
		return model.Mutation{}, errs.Validation("new owner equals current owner")
	}
	if !p.IsTokenized {
		return model.Mutation{}, errs.ErrNotTokenized
	}
	if auctionOpen(p, m.now()) {
		return model.Mutation{}, errs.ErrAuctionInProgress
	}

	evType := model.EventTransfer
	next := m.touched(p)
	if next.IsAuctionEnabled {
		next.IsAuctionEnabled = false
		evType = model.EventSale
	}
	next.Owner = in.To
	next.Status = model.StatusSold

	ev := m.event(evType, p, in.TransactionHash)
	ev.Price = in.Price
	ev.To = uuid.NullUUID{UUID: in.To, Valid: true}
	ev.Metadata[model.MetaPreviousOwner] = p.Owner.String()
	ev.Metadata[model.MetaNewOwner] = in.To.String()
	ev.Metadata[model.MetaTokenID] = p.TokenID
	ev.Metadata[model.MetaContractAddress] = p.ContractAddress
	return model.Mutation{Next: next, Event: &ev}, nil
}

func (m *Machine) nftMetadata(p model.Property) *model.NFTMetadata {
	md := &model.NFTMetadata{
		Name:        p.Title,
		Description: p.Description,
		Attributes: []model.NFTAttribute{
			{TraitType: "Property Type", Value: p.PropertyType},
			{TraitType: "Area", Value: p.Area},
			{TraitType: "Bedrooms", Value: p.Bedrooms},
			{TraitType: "Bathrooms", Value: p.Bathrooms},
			{TraitType: "Year Built", Value: yearBuilt(p.YearBuilt)},
		},
		ExternalURL: fmt.Sprintf("%s/properties/%s", m.frontendURL, p.ID),
	}
	if len(p.Images) > 0 {
		md.Image = p.Images[0]
	}
	return md
}

func yearBuilt(y int) any {
	if y == 0 {
		return "N/A"
	}
	return y
}
