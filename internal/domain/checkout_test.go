package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kicktwin/internal/domain"
)

func TestDraftContactGate(t *testing.T) {
	d := domain.NewOrderDraft()
	require.Equal(t, domain.StepContact, d.Step)

	// missing fields block the transition silently
	d.Next()
	assert.Equal(t, domain.StepContact, d.Step)

	d.Name = "Ivan Ivanov"
	d.Phone = "+7 999 123-45-67"
	d.Next()
	assert.Equal(t, domain.StepContact, d.Step, "email still missing")

	d.Email = "ivan@example.com"
	d.Next()
	assert.Equal(t, domain.StepAddress, d.Step)
}

func TestDraftAddressGate(t *testing.T) {
	d := domain.NewOrderDraft()
	d.Name, d.Phone, d.Email = "a", "b", "c"
	d.Next()
	require.Equal(t, domain.StepAddress, d.Step)

	d.City = "Moscow"
	d.Next()
	assert.Equal(t, domain.StepAddress, d.Step, "address empty, step must not move")

	d.Address = "Lenina st. 1"
	d.Next()
	assert.Equal(t, domain.StepPayment, d.Step)
	assert.True(t, d.Submittable())

	// no step past payment
	d.Next()
	assert.Equal(t, domain.StepPayment, d.Step)
}

func TestDraftBack(t *testing.T) {
	d := domain.NewOrderDraft()
	d.Back()
	assert.Equal(t, domain.StepContact, d.Step, "back at step one is a no-op")

	d.Name, d.Phone, d.Email = "a", "b", "c"
	d.Next()
	d.Back()
	assert.Equal(t, domain.StepContact, d.Step)
}

func TestSurchargeFor(t *testing.T) {
	assert.Equal(t, int64(0), domain.SurchargeFor(domain.DeliveryCourier))
	assert.Equal(t, int64(0), domain.SurchargeFor(domain.DeliveryPickup))
	assert.Equal(t, int64(1500), domain.SurchargeFor(domain.DeliveryExpress))
	assert.Equal(t, int64(0), domain.SurchargeFor("teleport"))
}

func TestTimelineCompletion(t *testing.T) {
	steps := domain.Timeline(domain.StatusInTransit)
	require.Len(t, steps, 4)
	assert.True(t, steps[0].Completed)
	assert.True(t, steps[1].Completed)
	assert.True(t, steps[2].Completed)
	assert.False(t, steps[3].Completed)

	for _, s := range domain.Timeline(domain.StatusCancelled) {
		assert.False(t, s.Completed)
	}
}
