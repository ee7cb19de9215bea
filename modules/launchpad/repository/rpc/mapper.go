package rpc

import (
	"time"

	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/samber/lo"
)

type collectionDTO struct {
	Name                 string            `json:"name"`
	URI                  string            `json:"uri"`
	SellerFeeBasisPoints uint16            `json:"sellerFeeBasisPoints"`
	IsCollection         bool              `json:"isCollection"`
	UpdateAuthority      keypair.PublicKey `json:"updateAuthority"`
}

type creatorDTO struct {
	Address keypair.PublicKey `json:"address"`
	Share   uint8             `json:"share"`
}

type itemDTO struct {
	Name   string `json:"name"`
	URI    string `json:"uri"`
	Minted bool   `json:"minted,omitempty"`
}

type startDateDTO struct {
	// Date is a unix timestamp in seconds.
	Date int64 `json:"date"`
}

type mintLimitDTO struct {
	ID    uint8  `json:"id"`
	Limit uint16 `json:"limit"`
}

type solPaymentDTO struct {
	Lamports    uint64            `json:"lamports"`
	Destination keypair.PublicKey `json:"destination"`
}

type guardSetDTO struct {
	StartDate  *startDateDTO  `json:"startDate,omitempty"`
	MintLimit  *mintLimitDTO  `json:"mintLimit,omitempty"`
	SolPayment *solPaymentDTO `json:"solPayment,omitempty"`
}

type machineDTO struct {
	Address              keypair.PublicKey `json:"address"`
	Authority            keypair.PublicKey `json:"authority"`
	Collection           keypair.PublicKey `json:"collection"`
	Symbol               string            `json:"symbol"`
	ItemsAvailable       uint64            `json:"itemsAvailable"`
	ItemsLoaded          uint64            `json:"itemsLoaded"`
	ItemsRedeemed        uint64            `json:"itemsRedeemed"`
	SellerFeeBasisPoints uint16            `json:"sellerFeeBasisPoints"`
	MaxEditionSupply     uint64            `json:"maxEditionSupply"`
	IsMutable            bool              `json:"isMutable"`
	Creators             []creatorDTO      `json:"creators"`
	Guards               guardSetDTO       `json:"guards"`
	Items                []itemDTO         `json:"items"`
}

func mapCreatorsToDTO(creators []entity.Creator) []creatorDTO {
	return lo.Map(creators, func(c entity.Creator, _ int) creatorDTO {
		return creatorDTO{Address: c.Address, Share: c.Share}
	})
}

func mapCreatorsToEntity(creators []creatorDTO) []entity.Creator {
	return lo.Map(creators, func(c creatorDTO, _ int) entity.Creator {
		return entity.Creator{Address: c.Address, Share: c.Share}
	})
}

func mapItemsToDTO(items []entity.Item) []itemDTO {
	return lo.Map(items, func(item entity.Item, _ int) itemDTO {
		return itemDTO{Name: item.Name, URI: item.URI}
	})
}

func mapItemToEntity(item itemDTO) entity.Item {
	return entity.Item{Name: item.Name, URI: item.URI, Minted: item.Minted}
}

func mapItemsToEntity(items []itemDTO) []entity.Item {
	return lo.Map(items, func(item itemDTO, _ int) entity.Item {
		return mapItemToEntity(item)
	})
}

func mapGuardsToDTO(guards entity.GuardSet) guardSetDTO {
	var dto guardSetDTO
	if guards.StartDate != nil {
		dto.StartDate = &startDateDTO{Date: guards.StartDate.Date.Unix()}
	}
	if guards.MintLimit != nil {
		dto.MintLimit = &mintLimitDTO{ID: guards.MintLimit.ID, Limit: guards.MintLimit.Limit}
	}
	if guards.SolPayment != nil {
		dto.SolPayment = &solPaymentDTO{Lamports: guards.SolPayment.Lamports, Destination: guards.SolPayment.Destination}
	}
	return dto
}

func mapGuardsToEntity(dto guardSetDTO) entity.GuardSet {
	var guards entity.GuardSet
	if dto.StartDate != nil {
		guards.StartDate = &entity.StartDateGuard{Date: time.Unix(dto.StartDate.Date, 0).UTC()}
	}
	if dto.MintLimit != nil {
		guards.MintLimit = &entity.MintLimitGuard{ID: dto.MintLimit.ID, Limit: dto.MintLimit.Limit}
	}
	if dto.SolPayment != nil {
		guards.SolPayment = &entity.SolPaymentGuard{Lamports: dto.SolPayment.Lamports, Destination: dto.SolPayment.Destination}
	}
	return guards
}

func mapMachineToEntity(dto machineDTO) *entity.Machine {
	return &entity.Machine{
		Address:              dto.Address,
		Authority:            dto.Authority,
		Collection:           dto.Collection,
		Symbol:               dto.Symbol,
		ItemsAvailable:       dto.ItemsAvailable,
		ItemsLoaded:          dto.ItemsLoaded,
		ItemsRedeemed:        dto.ItemsRedeemed,
		SellerFeeBasisPoints: dto.SellerFeeBasisPoints,
		MaxEditionSupply:     dto.MaxEditionSupply,
		IsMutable:            dto.IsMutable,
		Creators:             mapCreatorsToEntity(dto.Creators),
		Guards:               mapGuardsToEntity(dto.Guards),
		Items:                mapItemsToEntity(dto.Items),
	}
}
