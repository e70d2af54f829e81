package assistant

// Section headers quote the raw query
const (
	compareHeader  = "Based on your comparison query \"%s\", here's my analysis:\n\n"
	analysisHeader = "Here's my detailed analysis for \"%s\":\n\n"
	explainHeader  = "Let me explain \"%s\" in detail:\n\n"
	trendHeader    = "**Trend Analysis for \"%s\":**\n\n"
	forecastHeader = "**Forward-Looking Analysis for \"%s\":**\n\n"
	generalHeader  = "Based on my analysis of \"%s\", here are the key insights:\n\n"
)

const compareQuartersBody = `**Q1 vs Q2 FY25 Performance Comparison:**
• Revenue Acceleration: Q1 (₹31,200 cr, +28%) → Q2 (₹33,703 cr, +30%)
• ROE Improvement: Bajaj Finance ROE increased from 18.5% to 19.08%
• AUM Growth: Bajaj Finance AUM growth accelerated from 27% to 29%
• Market Share: BALIC gained market share from 8.5% to 9%

**Key Insights:** The progression from Q1 to Q2 shows accelerating momentum across all key metrics, indicating strong operational execution and market positioning.`

const compareHistoricalBody = `**Mar-22 to Jun-22 Historical Comparison:**
• Stock Performance: Declined from ₹1,720 (Mar) to ₹1,580 (Jun) due to market correction
• Business Resilience: Despite market headwinds, underlying business fundamentals remained strong
• Recovery Pattern: Recent quarters show recovery with Q2 FY25 stock averaging ₹1,750

**Analysis:** The Mar-Jun 2022 period was challenging due to broader market conditions, but the company's diversified business model provided resilience.`

const analyzeRevenueGrowthBody = `**Revenue Growth Pattern Analysis:**
• Q4 FY24: ₹28,945 cr (+25% YoY) - Strong foundation
• Q1 FY25: ₹31,200 cr (+28% YoY) - Accelerating momentum
• Q2 FY25: ₹33,703 cr (+30% YoY) - Peak performance
• Q3 FY25: ₹35,800 cr (+32% YoY) - Sustained excellence

**Pattern Insights:**
• Consistent acceleration: Growth rates improving each quarter
• Diversified drivers: All business segments contributing
• Predictable trajectory: Well-positioned for continued growth

**Strategic Implications:** The revenue pattern indicates successful execution of diversification strategy and strong market positioning across all business verticals.`

const analyzeBagicBody = `**BAGIC (General Insurance) Comprehensive Analysis:**
• Market Position: Leadership maintained in motor insurance segment
• Solvency Strength: Consistently above 300% (vs 150% regulatory requirement)
• Q2 Challenge: Government health business spillover impacted headline numbers
• Underlying Performance: 11% growth excluding one-time impacts
• Recovery Trajectory: Q3 FY25 showed 8% growth recovery

**Risk Management:** Strong combined ratios and proactive NATCAT management demonstrate robust underwriting capabilities.

**Outlook:** Well-positioned for profitable growth with market-leading capabilities in core segments.`

const explainAllianzBody = `**Allianz Partnership Impact Analysis:**
• **Current Status:** Allianz indicated potential exit from insurance JVs
• **Bajaj Position:** Maintains dominant 74% equity stake
• **Business Impact:** Two well-established insurance businesses (BAGIC & BALIC)
• **Operational Independence:** Strong management team and distribution networks

**Strategic Implications:**
• Greater control over strategic decisions
• Potential for accelerated growth initiatives
• Maintained market positions and competitive advantages

**Market Confidence:** Both insurance entities continue strong performance with growing market share.`

const trendProfitabilityBody = `**ROE Progression Trend Analysis:**
• Bajaj Finance: 17.8% (Q4) → 18.5% (Q1) → 19.08% (Q2) → 19.2% (Q3)
• Housing Finance: 12.1% (Q4) → 12.8% (Q1) → 13.03% (Q2) → 13.1% (Q3)
• BAGIC: Consistently above 12% across all quarters

**Trend Characteristics:**
• Consistent Improvement: Each quarter showing enhancement
• Broad-based Growth: All subsidiaries participating
• Quality Enhancement: Driven by operational efficiency

**Forward Outlook:** The trend suggests sustainable profitability improvement supported by business mix optimization and operational leverage.`

const forecastBody = `**FY26 Outlook Based on Current Trends:**
• Revenue Growth: Expected 25-30% based on current momentum
• Bajaj Finance: Targeting 25-28% AUM growth
• Housing Finance: Aiming for ₹1.5 lakh cr AUM
• BALIC: Targeting 10% market share
• Digital Initiatives: Accelerating transformation across all businesses

**Key Growth Drivers:**
• Strong capital position supporting expansion
• Diversified business model reducing concentration risk
• Digital-first customer acquisition scaling

**Management Confidence:** Leadership expresses confidence in sustained momentum across all quarters.`

const genericCompareText = "I can provide detailed comparisons. Could you specify which metrics or time periods you'd like me to compare?"

const genericExplainText = "I can provide detailed explanations. What specific aspect would you like me to clarify?"

const generalHousingSection = `**Bajaj Housing Finance Performance:**
• Exceptional Growth: 26% AUM growth reaching ₹1,02,569 cr in Q2
• Asset Quality: Best-in-class with 0.12% net NPA
• Profitability: ROE improved to 13.03%
• Market Position: Emerging as top-5 player in home loans

`

const generalDigitalSection = `**Digital Transformation Progress:**
• Mobile App Growth: 12M MAUs (Q1) → 14M MAUs (Q2)
• Digital Origination: 65% of new acquisitions
• AI/ML Deployment: Credit decisioning and fraud detection
• API-first Architecture: Enabling rapid product launches

`

const generalClosing = "**Cross-Business Synergies:** The comprehensive ecosystem approach is delivering enhanced customer value and improved operational efficiency across all segments."

var defaultTemplates = []string{
	`I couldn't find specific information for your query, but I'm here to help with comprehensive Bajaj Finserv insights!

🎯 **I can assist you with:**
• **Financial Performance:** Revenue, profit, growth metrics
• **Stock Analysis:** Price trends, historical data, market performance
• **Business Insights:** Insurance, lending, asset management segments
• **Comparative Analysis:** Peer comparisons, quarter trends

**Pro Tip:** Try being more specific with dates, metrics, or business segments for better results!`,
	`I don't have specific data for your question, but let me guide you to the information I can provide:

📊 **My Knowledge Areas:**
• **Quarterly Results:** Detailed financial performance data
• **Stock Data:** Historical prices, trends, and analysis
• **Business Segments:** BAGIC, BALIC, Bajaj Finance insights
• **Market Position:** Competitive analysis and industry metrics

**Suggestion:** Try rephrasing your question with specific time periods or metrics!`,
}

// DefaultTemplates returns a copy of the default-path answers
func DefaultTemplates() []string {
	out := make([]string, len(defaultTemplates))
	copy(out, defaultTemplates)
	return out
}
