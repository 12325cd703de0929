package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMembershipIntent() PurchaseIntent {
	return PurchaseIntent{
		Kind:         KindMembership,
		ClubID:       "club1",
		ClubName:     "Chess Club",
		Amount:       25,
		BuyerEmail:   "member@sphere.com",
		BuyerName:    "Member",
		ManagerEmail: "manager@sphere.com",
	}
}

func TestPurchaseIntent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PurchaseIntent)
		wantErr bool
	}{
		{"valid membership", func(i *PurchaseIntent) {}, false},
		{"valid event fee", func(i *PurchaseIntent) {
			i.Kind = KindEventFee
			i.EventID = "event1"
		}, false},
		{"unknown kind", func(i *PurchaseIntent) { i.Kind = "donation" }, true},
		{"zero amount", func(i *PurchaseIntent) { i.Amount = 0 }, true},
		{"negative amount", func(i *PurchaseIntent) { i.Amount = -5 }, true},
		{"missing buyer email", func(i *PurchaseIntent) { i.BuyerEmail = "" }, true},
		{"missing club id", func(i *PurchaseIntent) { i.ClubID = "" }, true},
		{"event fee without event id", func(i *PurchaseIntent) { i.Kind = KindEventFee }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := validMembershipIntent()
			tt.mutate(&intent)

			err := intent.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPurchaseIntent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEncodeMetadata_RoundTrip(t *testing.T) {
	intent := validMembershipIntent()

	decoded, err := DecodeIntent(intent.EncodeMetadata())

	require.NoError(t, err)
	assert.Equal(t, intent, decoded)
}

func TestEncodeMetadata_AbsentOptionalsPresent(t *testing.T) {
	meta := validMembershipIntent().EncodeMetadata()

	// Every key is written even when empty; confirmation reads them back
	// positionally and must never see a missing key.
	for _, key := range []string{"eventId", "eventTitle", "description", "bannerImage"} {
		v, ok := meta[key]
		assert.True(t, ok, "key %s missing", key)
		assert.Equal(t, "", v)
	}
}

func TestDecodeIntent_BadAmount(t *testing.T) {
	meta := validMembershipIntent().EncodeMetadata()
	meta["amount"] = "twenty-five"

	_, err := DecodeIntent(meta)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPurchaseIntent)
}

func TestDecodeIntent_TamperedKind(t *testing.T) {
	meta := validMembershipIntent().EncodeMetadata()
	meta["paymentType"] = "refund"

	_, err := DecodeIntent(meta)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPurchaseIntent)
}

func TestReconcileOutcome_Success(t *testing.T) {
	assert.True(t, OutcomeCompleted.Success())
	assert.False(t, OutcomeNotComplete.Success())
	assert.False(t, OutcomeSessionMissing.Success())
}
