package xbrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<html xmlns:uk-gaap="http://www.xbrl.org/uk/gaap/core/2009-09-01">
<body>
	<context id="cInstant"><period><instant>2021-03-31</instant></period></context>
	<context id="cPeriod">
		<period><startDate>2020-04-01</startDate><endDate>2021-03-31</endDate></period>
	</context>
	<BalanceSheetDate>2021-03-31</BalanceSheetDate>
	<CompaniesHouseRegisteredNumber>09355500</CompaniesHouseRegisteredNumber>
	<Debtors contextRef="cPeriod">1,000</Debtors>
	<TurnoverGrossOperatingRevenue contextRef="cPeriod">50,000</TurnoverGrossOperatingRevenue>
</body>
</html>`

func TestExtract_HappyPath(t *testing.T) {
	rows, err := Extract("Prod224_3082_09355500_20210331.html", []byte(sampleDoc))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Prod224_3082", row.RunCode)
	assert.Equal(t, "09355500", row.CompanyID)
	assert.Equal(t, "http://www.xbrl.org/uk/gaap/core/2009-09-01", row.Taxonomy)
	assert.Equal(t, "09355500", row.General["companies_house_registered_number"])
	assert.NotNil(t, row.PeriodStart)
	assert.NotNil(t, row.PeriodEnd)
	assert.NotNil(t, row.Periodic["debtors"])
	assert.NotNil(t, row.Periodic["turnover_gross_operating_revenue"])
	assert.Empty(t, row.Error)
}

func TestExtract_BadFilenameReturnsError(t *testing.T) {
	rows, err := Extract("not-a-valid-filename.html", []byte(sampleDoc))
	require.Error(t, err)
	assert.Nil(t, rows)
	var badFilename *BadFilenameError
	assert.ErrorAs(t, err, &badFilename)
}

func TestExtract_BadValueYieldsSingleErrorRow(t *testing.T) {
	doc := `<html><body><BalanceSheetDate>not a date</BalanceSheetDate></body></html>`
	rows, err := Extract("Prod224_3082_09355500_20210331.html", []byte(doc))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "09355500", row.CompanyID)
	assert.NotEmpty(t, row.Error)
	assert.Nil(t, row.General)
	assert.Nil(t, row.Periodic)
}

func TestExtract_NoPeriodsYieldsFallbackRow(t *testing.T) {
	doc := `<html><body><CompaniesHouseRegisteredNumber>09355500</CompaniesHouseRegisteredNumber></body></html>`
	rows, err := Extract("Prod224_3082_09355500_20210331.html", []byte(doc))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].PeriodStart)
	assert.Equal(t, "09355500", rows[0].General["companies_house_registered_number"])
}

func TestResolveTaxonomy_JoinsInFixedOrder(t *testing.T) {
	doc := `<html xmlns:a="http://xbrl.frc.org.uk/fr/2014-09-01/core" xmlns:b="http://www.xbrl.org/uk/gaap/core/2009-09-01"><body></body></html>`
	rows, err := Extract("Prod224_3082_09355500_20210331.html", []byte(doc))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "http://www.xbrl.org/uk/gaap/core/2009-09-01;http://xbrl.frc.org.uk/fr/2014-09-01/core", rows[0].Taxonomy)
}
