package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"entrega-tracker/internal/domain"
)

func TestDeliveryStatus_Valid(t *testing.T) {
	t.Parallel()

	require.True(t, domain.StatusInProgress.Valid())
	require.True(t, domain.StatusCompleted.Valid())
	require.False(t, domain.DeliveryStatus("").Valid())
	require.False(t, domain.DeliveryStatus("delivered").Valid())
}

func TestValidateCEP(t *testing.T) {
	t.Parallel()

	require.True(t, domain.ValidateCEP("01310-100"))
	require.True(t, domain.ValidateCEP("01310100"))
	require.False(t, domain.ValidateCEP(""))
	require.False(t, domain.ValidateCEP("0131-0100"))
	require.False(t, domain.ValidateCEP("abcde-fgh"))
}

func TestProof_Missing(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]string{"received_by", "cpf_receiver", "relation", "photo_url"},
		domain.Proof{}.Missing(),
	)

	p := domain.Proof{ReceivedBy: "Maria", Relation: "Esposa"}
	require.Equal(t, []string{"cpf_receiver", "photo_url"}, p.Missing())
	require.False(t, p.Complete())

	p.CPFReceiver = "12345678900"
	p.PhotoURL = "file://x.jpg"
	require.Empty(t, p.Missing())
	require.True(t, p.Complete())
}

func TestDelivery_ConsistentProof(t *testing.T) {
	t.Parallel()

	full := domain.Proof{
		ReceivedBy:  "Maria",
		CPFReceiver: "12345678900",
		Relation:    "Esposa",
		PhotoURL:    "file://x.jpg",
	}

	cases := []struct {
		name   string
		status domain.DeliveryStatus
		proof  domain.Proof
		want   bool
	}{
		{"in progress without proof", domain.StatusInProgress, domain.Proof{}, true},
		{"completed with full proof", domain.StatusCompleted, full, true},
		{"completed missing proof", domain.StatusCompleted, domain.Proof{ReceivedBy: "Maria"}, false},
		{"in progress with full proof", domain.StatusInProgress, full, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := domain.Delivery{Status: tc.status, Proof: tc.proof}
			require.Equal(t, tc.want, d.ConsistentProof())
		})
	}
}
