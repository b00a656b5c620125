package merchant

import (
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
)

var (
	PriceUpdatedTopic = events.DefineTypedTopic[PriceUpdatedEvent]("merchant.price.updated")
	RestockedTopic    = events.DefineTypedTopic[RestockedEvent]("merchant.restocked")
	AnnouncementTopic = events.DefineTypedTopic[AnnouncementEvent]("merchant.announcement")
)

type PriceUpdatedEvent struct {
	ZoneID     string    `json:"zone_id"`
	MerchantID string    `json:"merchant_id"`
	TokenID    int       `json:"token_id"`
	SellPrice  int64     `json:"sell_price"`
	BuyPrice   int64     `json:"buy_price"`
	At         time.Time `json:"at"`
}

type RestockedEvent struct {
	ZoneID     string    `json:"zone_id"`
	MerchantID string    `json:"merchant_id"`
	TokenID    int       `json:"token_id"`
	Quantity   int64     `json:"quantity"`
	At         time.Time `json:"at"`
}

// AnnouncementEvent is the merchant's periodic call-out: either its best
// current discount, or a note that a listing is out of stock.
type AnnouncementEvent struct {
	ZoneID     string    `json:"zone_id"`
	MerchantID string    `json:"merchant_id"`
	Message    string    `json:"message"`
	At         time.Time `json:"at"`
}
