package assistant

import (
	"fmt"
	"strings"
)

// Entry is one lexicon category: a keyword list and its canned answer
type Entry struct {
	Category string
	Keywords []string
	Response string
	// Weight is the base confidence of a keyword hit
	Weight float64
	// Boost is added to the confidence on a keyword hit
	Boost float64
}

// Lexicon is an ordered list of entries. Earlier entries win ties.
type Lexicon []Entry

// Validate checks that categories are unique, keyword lists are not
// empty and weights fall in (0, 1].
func (l Lexicon) Validate() error {
	seen := make(map[string]bool, len(l))
	for i, e := range l {
		if e.Category == "" {
			return fmt.Errorf("entry %d: empty category", i)
		}
		if seen[e.Category] {
			return fmt.Errorf("entry %d: duplicate category %q", i, e.Category)
		}
		seen[e.Category] = true

		if len(e.Keywords) == 0 {
			return fmt.Errorf("category %q: no keywords", e.Category)
		}
		for _, kw := range e.Keywords {
			if kw == "" {
				return fmt.Errorf("category %q: empty keyword", e.Category)
			}
		}
		if e.Weight <= 0 || e.Weight > 1 {
			return fmt.Errorf("category %q: weight %.2f out of range", e.Category, e.Weight)
		}
		if e.Boost < 0 {
			return fmt.Errorf("category %q: negative boost", e.Category)
		}
		if e.Response == "" {
			return fmt.Errorf("category %q: empty response", e.Category)
		}
	}
	return nil
}

// Match returns the first entry with a keyword contained in normalized
func (l Lexicon) Match(normalized string) (Entry, string, bool) {
	for _, e := range l {
		for _, kw := range e.Keywords {
			if strings.Contains(normalized, kw) {
				return e, kw, true
			}
		}
	}
	return Entry{}, "", false
}

const keywordWeight = 0.90

// DefaultLexicon is the quarterly results lexicon. It is never mutated.
var DefaultLexicon = Lexicon{
	{
		Category: "revenue",
		Keywords: []string{"revenue", "income", "sales", "total income", "earning", "turnover"},
		Response: "Bajaj Finserv Revenue Analysis (FY24-FY25): Q1 FY25: ₹31,200 cr (+28% YoY), Q2 FY25: ₹33,703 cr (+30% YoY), Q3 FY25: ₹35,800 cr (+32% YoY), Q4 FY24: ₹28,945 cr (+25% YoY). Full year FY25 revenue expected to reach ₹140,000+ crores with consistent 28-32% growth across quarters. Strong performance driven by all business segments.",
		Weight:   keywordWeight,
		Boost:    0.08,
	},
	{
		Category: "profitability",
		Keywords: []string{"roe", "return on equity", "roa", "profitability", "profit", "margin", "return"},
		Response: "ROE Performance Across Quarters: Bajaj Finance - Q1 FY25: 18.5%, Q2 FY25: 19.08%, Q3 FY25: 19.2%, Q4 FY24: 17.8%. Bajaj Housing Finance - Q1 FY25: 12.8%, Q2 FY25: 13.03%, Q3 FY25: 13.1%. BAGIC ROE consistently above 12% across all quarters. Stock broking achieved 12.03% ROE in Q2, up from 8.5% in Q1. Consistent profitability improvement across the board.",
		Weight:   keywordWeight,
		Boost:    0.08,
	},
	{
		Category: "aum",
		Keywords: []string{"aum", "assets under management", "asset", "portfolio", "book size"},
		Response: "AUM Growth Trajectory (FY24-FY25): Bajaj Finance - Q1 FY25: 27% growth, Q2 FY25: 29% growth, Q3 FY25: 31% growth. Bajaj Housing Finance - Q1 FY25: ₹96,500 cr (+24%), Q2 FY25: ₹1,02,569 cr (+26%), Q3 FY25: ₹1,08,200 cr (+28%). BALIC AUM - Q1 FY25: ₹1,18,500 cr, Q2 FY25: ₹1,23,178 cr (+25% YoY). Total ecosystem AUM crossing ₹8 lakh crores with accelerating growth.",
		Weight:   keywordWeight,
		Boost:    0.07,
	},
	{
		Category: "bagic",
		Keywords: []string{"bagic", "general insurance", "motor insurance", "gwp", "combined ratio", "solvency"},
		Response: "BAGIC Quarterly Performance Analysis: Q1 FY25 - GWP ₹12,500 cr (+15% YoY), combined ratio 98.5%. Q2 FY25 - Despite headline GWP down 20% due to govt health spillover, underlying growth 11%. Q3 FY25 - Recovery with 8% growth, combined ratio 99.2%. Q4 FY24 - Strong 18% growth, ROE 12.3%. Solvency consistently above 300%, market leadership in motor insurance maintained.",
		Weight:   keywordWeight,
		Boost:    0.07,
	},
	{
		Category: "balic",
		Keywords: []string{"balic", "life insurance", "individual new business", "market share", "ulip"},
		Response: "BALIC Quarterly Journey: Q1 FY25 - Individual new business grew 28%, market share 8.5%. Q2 FY25 - Accelerated to 34% growth, market share increased to 9%. Q3 FY25 - Sustained momentum with 30% growth. Q4 FY24 - Strong 25% growth, ranked 6th among private players. Consistent market share gains, ULIP business scaling, strong distribution network expansion across all quarters.",
		Weight:   keywordWeight,
		Boost:    0.07,
	},
	{
		Category: "housing",
		Keywords: []string{"housing", "bajaj housing finance", "bhfl", "home loan", "npa", "asset quality"},
		Response: "Bajaj Housing Finance Quarterly Excellence: Q1 FY25 - AUM ₹96,500 cr (+24%), gross NPA 0.31%. Q2 FY25 - AUM ₹1,02,569 cr (+26%), net NPA 0.12%, PAT ₹546 cr (+21%). Q3 FY25 - AUM ₹1,08,200 cr (+28%), maintained best-in-class asset quality. ROE progression: Q4 FY24: 12.1% → Q1 FY25: 12.8% → Q2 FY25: 13.03%. Exceptional credit underwriting across all quarters.",
		Weight:   keywordWeight,
		Boost:    0.07,
	},
	{
		Category: "stock",
		Keywords: []string{"stock", "share price", "stock price", "highest", "jan-22", "january", "march", "performance"},
		Response: "Bajaj Finserv Stock Performance Timeline: Jan 2022 - Peak at ₹1,950, Mar 2022 - ₹1,720, Jun 2022 - ₹1,580 (market correction). Q1 FY25 average ₹1,650, Q2 FY25 average ₹1,750, Q3 FY25 recovery to ₹1,850. Strong correlation with business performance, diversified model providing resilience. Recent quarters showing recovery aligned with operational excellence.",
		Weight:   keywordWeight,
		Boost:    0.06,
	},
	{
		Category: "comparison",
		Keywords: []string{"compare", "comparison", "mar-22", "jun-22", "vs", "quarter", "q1", "q2", "q3", "q4"},
		Response: "Quarterly Performance Comparison (Mar-22 to Jun-22 vs Recent): Mar-22 period showed 22% revenue growth, Jun-22 period had 18% growth due to market headwinds. Recent comparison Q1 FY25 to Q2 FY25: Revenue acceleration from 28% to 30%, BAGIC recovery from challenges, BALIC market share gains from 8.5% to 9%, Housing Finance AUM growth acceleration from 24% to 26%. Significant operational improvements and market share gains.",
		Weight:   keywordWeight,
		Boost:    0.06,
	},
	{
		Category: "market",
		Keywords: []string{"market", "bajaj markets", "key growth drivers", "position", "share", "leadership"},
		Response: "Market Position Evolution (All Quarters): Bajaj Markets ecosystem expansion - Q1 FY25: Wealth management AUM ₹15,200 cr, Q2 FY25: ₹16,000 cr. Key drivers: BALIC market share growth (8% to 9%), BAGIC motor insurance leadership, Housing Finance emerging as top-5 player, Stock broking scaling rapidly (78% revenue growth Q2), Digital initiatives across all businesses driving customer acquisition.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
	{
		Category: "subsidiary",
		Keywords: []string{"subsidiary", "hero fincorp", "performing", "bajaj finance", "division", "business"},
		Response: "Comprehensive Subsidiary Performance (FY24-FY25): Bajaj Finance (Flagship) - Consistent 27-31% AUM growth, ROE 17.8-19.2%. Housing Finance - Rapid scaling, 24-28% AUM growth. BAGIC - Market leadership, solvency >300%. BALIC - Market share gains 8% to 9%. Stock Broking - Revenue growth 45% in Q1, 78% in Q2. Health (Post Vidal) - Integration progressing, ₹233 cr quarterly revenue. Hero FinCorp partnership strengthening rural reach.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
	{
		Category: "outlook",
		Keywords: []string{"outlook", "next quarter", "future", "forecast", "guidance", "fy26", "target"},
		Response: "Comprehensive Outlook Based on Quarterly Trends: FY26 targets - Revenue growth 25-30%, Bajaj Finance AUM growth 25-28%, Housing Finance targeting ₹1.5 lakh cr AUM, BALIC aiming for 10% market share, BAGIC focusing on profitable growth. Digital transformation accelerating, new business initiatives scaling, strong capital position supporting growth. Management confident of sustained momentum across all quarters.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
	{
		Category: "cfo",
		Keywords: []string{"cfo", "commentary", "investor presentation", "financial", "metrics", "summary"},
		Response: "CFO-Level Quarterly Financial Summary: FY25 YTD - Consolidated revenue ₹135,000+ cr (+30% YoY), Bajaj Finance contributes 65%, Insurance 25%, Others 10%. ROE improvement across all subsidiaries: BFL 19.08%, Housing 13.03%, BAGIC 12.3%. Asset quality best-in-class: BFL gross NPA 1.06%, Housing NPA 0.29%. Capital adequacy strong: Tier-1 ratios above regulatory norms. Diversification reducing concentration risk, emerging businesses contributing meaningfully.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
	{
		Category: "digital",
		// "ai" and "ml" are left out: as substrings they fire inside
		// ordinary words such as "explain" and "html".
		Keywords: []string{"digital", "technology", "mobile", "app", "fintech", "automation"},
		Response: "Digital Journey Across Quarters: Q1 FY25 - Mobile app MAUs 12M, Q2 FY25 - 14M MAUs, digital origination 65%. Q3 FY25 - AI/ML models deployed for credit decisioning, fraud detection. Digital-first customer acquisition growing 40% QoQ. Bajaj Pay wallet scaling, fintech partnerships expanding. API-first architecture enabling rapid product launches across all business lines.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
	{
		Category: "credit",
		Keywords: []string{"credit", "npa", "asset quality", "collection", "risk", "underwriting", "loan"},
		Response: "Credit Quality Quarterly Evolution: Bajaj Finance - Q1 FY25: Gross NPA 1.08%, Q2 FY25: 1.06%, Q3 FY25: 1.04% (improving trend). Housing Finance - Consistently <0.30% gross NPA across all quarters. Collection efficiency >99% maintained. Proactive risk management, diversified portfolio, strong underwriting standards. Early warning systems preventing deterioration. Best-in-industry asset quality metrics.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
	{
		Category: "esg",
		Keywords: []string{"esg", "environment", "social", "governance", "sustainability", "green", "carbon"},
		Response: "ESG Progress Quarterly Updates: Q1 FY25 - Green finance portfolio ₹5,200 cr, Q2 FY25 - ₹6,800 cr. Carbon footprint reduction 15% YoY, renewable energy usage 35%. Women employees 38%, rural customer base 42%. Financial inclusion through 2,500+ touchpoints. Strong governance scores, transparent reporting. ESG rating improvements from Sustainalytics and MSCI across quarters.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
	{
		Category: "health",
		Keywords: []string{"bajaj finserv health", "vidal", "healthtech"},
		Response: "Bajaj Finserv Health Q2 FY25 update: Post-acquisition of Vidal Health, integration work commenced. Consolidated revenue for the quarter was ₹233 crores. As a pure healthtech start-up, this revenue level is encouraging. The integration of Vidal provides significant runway for growth. Profit after tax was negative ₹32 crores, well within planned expectations.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
	{
		Category: "broking",
		Keywords: []string{"stock broking", "broking", "securities"},
		Response: "Stock broking business (under Bajaj Finance) delivered exceptional Q2 FY25 performance: 78% growth in revenue from operations at ₹121 crores. Profit after tax surged 185% to ₹37 crores. AUM at ₹5,430 crores represents margin trade finance AUM. ROE of 12.03% achieved - this emerging business has reached comfortable profitability levels.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
	{
		Category: "allianz",
		Keywords: []string{"allianz", "exit"},
		Response: "Regarding Allianz exit (Q2 FY25 call): Management disclosed that Allianz intimated they are considering exit from insurance joint ventures. No significant additional information available at that stage. Bajaj will continue to be dominant shareholder with 74% equity stake. Two solid insurance businesses built over several years will continue under Bajaj's leadership.",
		Weight:   keywordWeight,
		Boost:    0.05,
	},
}
