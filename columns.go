package xbrl

import (
	"strings"

	"golang.org/x/net/html"
)

// AllowedTaxonomies is the intersection tested against a document's
// namespace URIs to populate the taxonomy column (spec §4.5, grounded on
// original_source/stream_read_xbrl.py's allowed_taxonomies list).
var AllowedTaxonomies = []string{
	"http://www.xbrl.org/uk/fr/gaap/pt/2004-12-01",
	"http://www.xbrl.org/uk/gaap/core/2009-09-01",
	"http://xbrl.frc.org.uk/fr/2014-09-01/core",
}

// tagOrSuffix returns the pair of RuleSpecs for one tier of the original
// mapping tables' _element_has_tag_name_or_name_attr_value alias: the tier
// fires on either a matching tag local name or a matching name-attribute
// suffix, both at the same priority.
func tagOrSuffix(priority int, literal string, parser Parser) []RuleSpec {
	return []RuleSpec{
		{Priority: priority, Matcher: MatchTagLocalName, Literal: literal, Parser: parser},
		{Priority: priority, Matcher: MatchNameAttrSuffix, Literal: literal, Parser: parser},
	}
}

func tagOnly(priority int, literal string, parser Parser) RuleSpec {
	return RuleSpec{Priority: priority, Matcher: MatchTagLocalName, Literal: literal, Parser: parser}
}

func suffixOnly(priority int, literal string, parser Parser) RuleSpec {
	return RuleSpec{Priority: priority, Matcher: MatchNameAttrSuffix, Literal: literal, Parser: parser}
}

// GeneralColumns lists every per-document column, grounded on
// original_source/stream_read_xbrl.py's GENERAL_XPATH_MAPPINGS.
func GeneralColumns() []ColumnDef {
	return []ColumnDef{
		{
			Name: "balance_sheet_date",
			Kind: General,
			Rules: []RuleSpec{
				suffixOnly(0, "BalanceSheetDate", ParseDate),
				tagOnly(1, "BalanceSheetDate", ParseDate),
			},
		},
		{
			Name: "companies_house_registered_number",
			Kind: General,
			Rules: []RuleSpec{
				suffixOnly(0, "UKCompaniesHouseRegisteredNumber", ParseString),
				tagOnly(1, "CompaniesHouseRegisteredNumber", ParseString),
			},
		},
		{
			Name: "entity_current_legal_name",
			Kind: General,
			Rules: []RuleSpec{
				suffixOnly(0, "EntityCurrentLegalOrRegisteredName", ParseString),
				tagOnly(1, "EntityCurrentLegalName", ParseString),
				{
					Priority: 2,
					Matcher:  MatchNameAttrSuffix,
					Literal:  "EntityCurrentLegalOrRegisteredName",
					Parser:   ParseString,
					Expand:   expandToFirstSpan,
				},
			},
		},
		{
			Name: "company_dormant",
			Kind: General,
			Rules: []RuleSpec{
				suffixOnly(0, "EntityDormantTruefalse", ParseBool),
				suffixOnly(1, "EntityDormant", ParseBool),
				tagOnly(2, "CompanyDormant", ParseBool),
				tagOnly(3, "CompanyNotDormant", ParseReversedBool),
			},
		},
		{
			Name: "average_number_employees_during_period",
			Kind: General,
			Rules: []RuleSpec{
				suffixOnly(0, "AverageNumberEmployeesDuringPeriod", ParseDecimalWithPrefix),
				suffixOnly(1, "EmployeesTotal", ParseDecimalWithPrefix),
				tagOnly(2, "AverageNumberEmployeesDuringPeriod", ParseDecimalWithPrefix),
				tagOnly(3, "EmployeesTotal", ParseDecimalWithPrefix),
			},
		},
	}
}

// expandToFirstSpan widens the search to the matched element followed by
// its first descendant <span>, or the matched element alone when no span
// exists (spec §4.2, §9 — grounded on stream_read_xbrl.py's
// entity_current_legal_name third xpath alternative, which digs into a
// presentation <span> wrapping the legal name).
func expandToFirstSpan(el *html.Node) []*html.Node {
	if span := firstDescendantByLocalName(el, "span"); span != nil {
		return []*html.Node{el, span}
	}
	return []*html.Node{el}
}

// creditorsContextContains builds the custom predicate behind
// creditors_due_within_one_year / creditors_due_after_one_year's second
// xpath alternative: name-attribute suffix "Creditors" whose contextRef
// contains the given marker.
func creditorsContextContains(marker string) CustomPredicate {
	return func(el *html.Node, local, nameSuffix, contextRef string) []*html.Node {
		if nameSuffix == "Creditors" && strings.Contains(contextRef, marker) {
			return []*html.Node{el}
		}
		return nil
	}
}

// equityContextContains builds the custom predicate behind
// called_up_share_capital / profit_loss_account_reserve's second xpath
// alternative: name-attribute suffix "Equity" whose contextRef contains the
// given marker.
func equityContextContains(marker string) CustomPredicate {
	return func(el *html.Node, local, nameSuffix, contextRef string) []*html.Node {
		if nameSuffix == "Equity" && strings.Contains(contextRef, marker) {
			return []*html.Node{el}
		}
		return nil
	}
}

// equityContextNotContains builds shareholder_funds's second xpath
// alternative: name-attribute suffix "Equity" whose contextRef does NOT
// contain "segment".
func equityContextNotContains(marker string) CustomPredicate {
	return func(el *html.Node, local, nameSuffix, contextRef string) []*html.Node {
		if nameSuffix == "Equity" && !strings.Contains(contextRef, marker) {
			return []*html.Node{el}
		}
		return nil
	}
}

// PeriodicColumns lists every per-period balance-sheet and income-statement
// column, in the fixed output order, grounded on
// original_source/stream_read_xbrl.py's PERIODICAL_XPATH_MAPPINGS.
func PeriodicColumns() []ColumnDef {
	cols := []ColumnDef{
		{Name: "tangible_fixed_assets", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "FixedAssets", ParseDecimal),
			tagOrSuffix(1, "TangibleFixedAssets", ParseDecimal),
			[]RuleSpec{suffixOnly(2, "PropertyPlantEquipment", ParseDecimal)},
		)},
		{Name: "debtors", Kind: Periodic, Rules: tagOrSuffix(0, "Debtors", ParseDecimal)},
		{Name: "cash_bank_in_hand", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "CashBankInHand", ParseDecimal),
			[]RuleSpec{suffixOnly(1, "CashBankOnHand", ParseDecimal)},
		)},
		{Name: "current_assets", Kind: Periodic, Rules: tagOrSuffix(0, "CurrentAssets", ParseDecimal)},
		{Name: "creditors_due_within_one_year", Kind: Periodic, Rules: []RuleSpec{
			suffixOnly(0, "CreditorsDueWithinOneYear", ParseDecimal),
			{Priority: 1, Matcher: MatchCustom, Predicate: creditorsContextContains("WithinOneYear"), Parser: ParseDecimal},
		}},
		{Name: "creditors_due_after_one_year", Kind: Periodic, Rules: []RuleSpec{
			suffixOnly(0, "CreditorsDueAfterOneYear", ParseDecimal),
			{Priority: 1, Matcher: MatchCustom, Predicate: creditorsContextContains("AfterOneYear"), Parser: ParseDecimal},
		}},
		{Name: "net_current_assets_liabilities", Kind: Periodic, Rules: tagOrSuffix(0, "NetCurrentAssetsLiabilities", ParseDecimal)},
		{Name: "total_assets_less_current_liabilities", Kind: Periodic, Rules: tagOrSuffix(0, "TotalAssetsLessCurrentLiabilities", ParseDecimal)},
		{Name: "net_assets_liabilities_including_pension_asset_liability", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "NetAssetsLiabilitiesIncludingPensionAssetLiability", ParseDecimal),
			tagOrSuffix(1, "NetAssetsLiabilities", ParseDecimal),
		)},
		{Name: "called_up_share_capital", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "CalledUpShareCapital", ParseDecimal),
			[]RuleSpec{{Priority: 1, Matcher: MatchCustom, Predicate: equityContextContains("ShareCapital"), Parser: ParseDecimal}},
		)},
		{Name: "profit_loss_account_reserve", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "ProfitLossAccountReserve", ParseDecimal),
			[]RuleSpec{{Priority: 1, Matcher: MatchCustom, Predicate: equityContextContains("RetainedEarningsAccumulatedLosses"), Parser: ParseDecimal}},
		)},
		{Name: "shareholder_funds", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "ShareholderFunds", ParseDecimal),
			[]RuleSpec{{Priority: 1, Matcher: MatchCustom, Predicate: equityContextNotContains("segment"), Parser: ParseDecimal}},
		)},
		{Name: "turnover_gross_operating_revenue", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "TurnoverGrossOperatingRevenue", ParseDecimal),
			tagOrSuffix(1, "TurnoverRevenue", ParseDecimal),
		)},
		{Name: "other_operating_income", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "OtherOperatingIncome", ParseDecimal),
			tagOrSuffix(1, "OtherOperatingIncomeFormat2", ParseDecimal),
		)},
		{Name: "cost_sales", Kind: Periodic, Rules: tagOrSuffix(0, "CostSales", ParseDecimal)},
		{Name: "gross_profit_loss", Kind: Periodic, Rules: tagOrSuffix(0, "GrossProfitLoss", ParseDecimal)},
		{Name: "administrative_expenses", Kind: Periodic, Rules: tagOrSuffix(0, "AdministrativeExpenses", ParseDecimal)},
		{Name: "raw_materials_consumables", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "RawMaterialsConsumables", ParseDecimal),
			tagOrSuffix(1, "RawMaterialsConsumablesUsed", ParseDecimal),
		)},
		{Name: "staff_costs", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "StaffCosts", ParseDecimal),
			tagOrSuffix(1, "StaffCostsEmployeeBenefitsExpense", ParseDecimal),
		)},
		{Name: "depreciation_other_amounts_written_off_tangible_intangible_fixed_assets", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "DepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets", ParseDecimal),
			tagOrSuffix(1, "DepreciationAmortisationImpairmentExpense", ParseDecimal),
		)},
		{Name: "other_operating_charges_format2", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "OtherOperatingChargesFormat2", ParseDecimal),
			tagOrSuffix(1, "OtherOperatingExpensesFormat2", ParseDecimal),
		)},
		{Name: "operating_profit_loss", Kind: Periodic, Rules: tagOrSuffix(0, "OperatingProfitLoss", ParseDecimal)},
		{Name: "profit_loss_on_ordinary_activities_before_tax", Kind: Periodic, Rules: tagOrSuffix(0, "ProfitLossOnOrdinaryActivitiesBeforeTax", ParseDecimal)},
		{Name: "tax_on_profit_or_loss_on_ordinary_activities", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "TaxOnProfitOrLossOnOrdinaryActivities", ParseDecimal),
			tagOrSuffix(1, "TaxTaxCreditOnProfitOrLossOnOrdinaryActivities", ParseDecimal),
		)},
		{Name: "profit_loss_for_period", Kind: Periodic, Rules: concatSpecs(
			tagOrSuffix(0, "ProfitLoss", ParseDecimal),
			tagOrSuffix(1, "ProfitLossForPeriod", ParseDecimal),
		)},
	}
	return cols
}

func concatSpecs(groups ...[]RuleSpec) []RuleSpec {
	var out []RuleSpec
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// PeriodicColumnNames returns the periodic columns' names in fixed order,
// the order the assembler lays out each period's row tuple (spec §6).
func PeriodicColumnNames() []string {
	names := make([]string, 0, len(PeriodicColumns()))
	for _, c := range PeriodicColumns() {
		names = append(names, c.Name)
	}
	return names
}

// GeneralColumnNames returns the general columns' names in fixed order.
func GeneralColumnNames() []string {
	names := make([]string, 0, len(GeneralColumns()))
	for _, c := range GeneralColumns() {
		names = append(names, c.Name)
	}
	return names
}

// DefaultRegistry compiles the engine's one and only rule registry, built
// once at package init and reused for every document (spec §3).
var DefaultRegistry = CompileRegistry(concatColumnDefs(GeneralColumns(), PeriodicColumns()))

func concatColumnDefs(groups ...[]ColumnDef) []ColumnDef {
	var out []ColumnDef
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
