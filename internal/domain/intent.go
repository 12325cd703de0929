package domain

import (
	"fmt"
	"strconv"
)

// Session metadata keys. The metadata is read back authoritatively on
// confirmation, so every field is always present; absent optionals are
// encoded as "" and never omitted.
const (
	metaPaymentType  = "paymentType"
	metaClubID       = "clubId"
	metaEventID      = "eventId"
	metaClubName     = "clubName"
	metaEventTitle   = "eventTitle"
	metaDescription  = "description"
	metaBannerImage  = "bannerImage"
	metaAmount       = "amount"
	metaMemberEmail  = "memberEmail"
	metaMemberName   = "memberName"
	metaManagerEmail = "managerEmail"
)

func (i PurchaseIntent) Validate() error {
	if i.Kind != KindMembership && i.Kind != KindEventFee {
		return fmt.Errorf("%w: unknown payment type %q", ErrInvalidPurchaseIntent, i.Kind)
	}
	if i.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidPurchaseIntent)
	}
	if i.BuyerEmail == "" {
		return fmt.Errorf("%w: buyer email is required", ErrInvalidPurchaseIntent)
	}
	if i.ClubID == "" {
		return fmt.Errorf("%w: club id is required", ErrInvalidPurchaseIntent)
	}
	if i.Kind == KindEventFee && i.EventID == "" {
		return fmt.Errorf("%w: event id is required for event fees", ErrInvalidPurchaseIntent)
	}
	return nil
}

func (i PurchaseIntent) EncodeMetadata() map[string]string {
	return map[string]string{
		metaPaymentType:  string(i.Kind),
		metaClubID:       i.ClubID,
		metaEventID:      i.EventID,
		metaClubName:     i.ClubName,
		metaEventTitle:   i.EventTitle,
		metaDescription:  i.Description,
		metaBannerImage:  i.BannerImage,
		metaAmount:       strconv.FormatInt(i.Amount, 10),
		metaMemberEmail:  i.BuyerEmail,
		metaMemberName:   i.BuyerName,
		metaManagerEmail: i.ManagerEmail,
	}
}

// DecodeIntent reconstructs a PurchaseIntent from session metadata and
// validates it, so a session tampered with or written by an older revision
// fails loudly instead of producing half-empty records.
func DecodeIntent(meta map[string]string) (PurchaseIntent, error) {
	amount, err := strconv.ParseInt(meta[metaAmount], 10, 64)
	if err != nil {
		return PurchaseIntent{}, fmt.Errorf("%w: bad amount %q", ErrInvalidPurchaseIntent, meta[metaAmount])
	}

	intent := PurchaseIntent{
		Kind:         PurchaseKind(meta[metaPaymentType]),
		ClubID:       meta[metaClubID],
		EventID:      meta[metaEventID],
		ClubName:     meta[metaClubName],
		EventTitle:   meta[metaEventTitle],
		Description:  meta[metaDescription],
		BannerImage:  meta[metaBannerImage],
		Amount:       amount,
		BuyerEmail:   meta[metaMemberEmail],
		BuyerName:    meta[metaMemberName],
		ManagerEmail: meta[metaManagerEmail],
	}
	if err := intent.Validate(); err != nil {
		return PurchaseIntent{}, err
	}
	return intent, nil
}
