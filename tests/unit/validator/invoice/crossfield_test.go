package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
)

func TestCrossField_GSTINStateMismatch(t *testing.T) {
	rec := validRecord(domain.SaleTypeIntrastate)
	rec.Company.StateCode = "36"
	rec.Receiver.StateCode = "36"
	rec.Consignee.StateCode = "36"

	diags := failuresFor(rec, "xf.company.gstin_state")
	require.Len(t, diags, 1)
	assert.Equal(t, domain.ValidationSeverityError, diags[0].Severity)
	assert.Equal(t, "37", diags[0].Actual)
}

func TestCrossField_UnregisteredGSTINSkipsStateCheck(t *testing.T) {
	rec := validRecord(domain.SaleTypeIntrastate)
	rec.Receiver.GSTIN = "UNREGISTERED"
	rec.Consignee.GSTIN = "UNREGISTERED"

	assert.Empty(t, failuresFor(rec, "xf.receiver.gstin_state"))
	assert.Empty(t, failuresFor(rec, "xf.consignee.gstin_state"))
}

func TestCrossField_SaleTypeDisagreesWithStates(t *testing.T) {
	rec := validRecord(domain.SaleTypeIntrastate)
	rec.SaleType = domain.SaleTypeInterstate

	// Interstate on matching state codes also puts CGST/SGST amounts under
	// scrutiny; only the sale-type rule is asserted here.
	diags := failuresFor(rec, "xf.sale_type.state_codes")
	require.Len(t, diags, 1)
	assert.Equal(t, domain.ValidationSeverityWarning, diags[0].Severity)
	assert.Equal(t, string(domain.SaleTypeIntrastate), diags[0].Expected)
}

func TestCrossField_OverriddenSaleTypeStillWarns(t *testing.T) {
	rec := validRecord(domain.SaleTypeIntrastate)
	rec.SaleType = domain.SaleTypeInterstate
	rec.SaleTypeOverridden = true

	diags := failuresFor(rec, "xf.sale_type.state_codes")
	require.Len(t, diags, 1)
	assert.Equal(t, domain.ValidationSeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "manual override in effect")
}

func TestCrossField_IntrastateCarryingIGST(t *testing.T) {
	rec := validRecord(domain.SaleTypeIntrastate)
	rec.Items[0].IGSTRate = 12
	rec.Items[0].IGSTAmount = 5040

	diags := failuresFor(rec, "xf.items.intrastate_regime")
	require.Len(t, diags, 1)
	assert.Equal(t, domain.ValidationSeverityError, diags[0].Severity)
	assert.Equal(t, "items[0]", diags[0].FieldPath)
}

func TestCrossField_InterstateCarryingCGST(t *testing.T) {
	rec := validRecord(domain.SaleTypeInterstate)
	rec.Items[0].CGSTRate = 6
	rec.Items[0].CGSTAmount = 2520

	diags := failuresFor(rec, "xf.items.interstate_regime")
	require.Len(t, diags, 1)
	assert.Equal(t, domain.ValidationSeverityError, diags[0].Severity)
}

func TestCrossField_SamePartyGSTINs(t *testing.T) {
	rec := validRecord(domain.SaleTypeIntrastate)
	rec.Receiver.GSTIN = rec.Company.GSTIN

	diags := failuresFor(rec, "xf.parties.different_gstin")
	require.Len(t, diags, 1)
	assert.Equal(t, domain.ValidationSeverityWarning, diags[0].Severity)
}
