package payment

import (
	"testing"

	"wayplan/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateCheckoutRequest(t *testing.T) {
	valid := models.CheckoutRequest{
		ItineraryID: "itin-1",
		Amount:      1500,
		Currency:    "eur",
		Email:       "traveler@example.com",
	}
	assert.NoError(t, ValidateCheckoutRequest(valid))

	missingID := valid
	missingID.ItineraryID = ""
	assert.ErrorContains(t, ValidateCheckoutRequest(missingID), "itinerary ID")

	zeroAmount := valid
	zeroAmount.Amount = 0
	assert.ErrorContains(t, ValidateCheckoutRequest(zeroAmount), "amount")

	negativeAmount := valid
	negativeAmount.Amount = -100
	assert.Error(t, ValidateCheckoutRequest(negativeAmount))

	missingCurrency := valid
	missingCurrency.Currency = ""
	assert.ErrorContains(t, ValidateCheckoutRequest(missingCurrency), "currency")
}

func TestCreateCheckoutSessionRejectsInvalidRequest(t *testing.T) {
	svc := NewStripeCheckoutService(nil)

	_, err := svc.CreateCheckoutSession(models.CheckoutRequest{})
	assert.ErrorContains(t, err, "invalid checkout request")
}
