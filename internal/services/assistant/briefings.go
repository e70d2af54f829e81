package assistant

// briefing is a long-form answer for a combination of phrases that must
// all appear in the query
type briefing struct {
	name    string
	phrases []string
	text    string
}

var briefings = []briefing{
	{
		name:    "bagic-motor-headwinds",
		phrases: []string{"bagic", "motor", "headwind"},
		text:    `**BAGIC Motor Insurance Headwinds Analysis - Q4 FY25:**

The motor insurance business is facing significant challenges as revealed in our latest earnings:

**Key Headwinds:**
1. **Fintech Competition:** New digital-first players offering competitive pricing
2. **Regulatory Pricing Pressure:** IRDAI guidelines limiting pricing flexibility
3. **Rising Claim Costs:** Vehicle repair inflation impacting loss ratios
4. **EV Transition:** Shift to electric vehicles affecting traditional insurance models
5. **Market Saturation:** Intense competition in urban markets

**Impact Metrics:**
• Motor insurance growth slowed to 5% in Q4 vs 15% in Q3
• Pricing pressure resulted in 2-3% margin compression
• New player market share increased by 8% YoY

**Mitigation Strategies:**
✅ Focus on profitable customer segments with better risk profiles
✅ Leverage Hero partnership for tier-2/3 market expansion
✅ Enhance digital capabilities for cost efficiency
✅ Develop usage-based insurance products for EVs
✅ Strengthen data analytics for better underwriting

**Outlook:** Management expects stabilization by Q2 FY26 with recovery in H2.`,
	},
	{
		name:    "hero-partnership",
		phrases: []string{"hero", "partnership"},
		text:    `**Hero Partnership Strategic Deep Dive:**

**Partnership Timeline & Progress:**
• Q1 FY25: Partnership announced with Hero MotoCorp
• Q2 FY25: Pilot program with 500 dealerships
• Q3 FY25: Scaled to 2,500 dealerships (+120% sales growth)
• Q4 FY25: Target 4,000 dealerships by year-end

**Strategic Rationale:**
1. **Market Access:** Hero's 6,000+ dealer network across India
2. **Geographic Expansion:** Strong presence in tier-2/3 cities (65% of Hero sales)
3. **Customer Synergy:** 2.5 million Hero customers annually
4. **Point-of-Sale Advantage:** Insurance at vehicle purchase point
5. **Brand Trust:** Hero's 40+ year market presence

**Financial Impact:**
• Average ticket size: ₹8,500 per policy
• Expected annual premium: ₹500-600 crores by FY26
• Channel partner commission optimized at 12-15%
• Customer acquisition cost reduced by 40%

**Technology Integration:**
• Unified digital platform for seamless experience
• Real-time policy issuance at dealer locations
• Integrated claim settlement process
• IoT integration for usage-based insurance

**Future Expansion:**
Planning similar partnerships with Bajaj Auto and TVS Motors for comprehensive two-wheeler coverage.`,
	},
	{
		name:    "allianz-stake-sale",
		phrases: []string{"allianz", "stake"},
		text:    `**Allianz Stake Sale - Complete Timeline & Status:**

**Transaction Overview:**
• Stake Size: 26% in both Bajaj Allianz Life & General Insurance
• Final Valuation: ₹48,500 crores (Q4 FY25)
• Acquirer: Blackstone-led consortium
• Expected Completion: Q2 FY26

**Detailed Timeline:**
| Quarter | Milestone | Status |
|---------|-----------|---------|
| Q1 FY25 | Initial discussions & advisor appointment | ✅ Completed |
| Q2 FY25 | Information memorandum & initial bids | ✅ Completed |
| Q3 FY25 | IRDAI approval received | ✅ Completed |
| Q4 FY25 | Binding agreement signed | ✅ Completed |
| Q1 FY26 | Final regulatory clearances | 🔄 In Progress |
| Q2 FY26 | Transaction completion | 📅 Planned |

**Valuation Journey:**
• Initial estimates: ₹40,000-45,000 crores
• Final agreed value: ₹48,500 crores
• Premium achieved: 8-10% above initial estimates
• Based on 2.5x Price-to-Book multiple

**Use of Proceeds (₹48,500 crores):**
1. **Expansion (40%):** Tier-2/3 city penetration - ₹19,400 cr
2. **Technology (25%):** Digital infrastructure upgrade - ₹12,125 cr
3. **Product Development (20%):** New insurance products - ₹9,700 cr
4. **Strategic Acquisitions (15%):** Fintech/insurtech companies - ₹7,275 cr

**Strategic Benefits:**
✅ Enhanced operational flexibility
✅ Focus on domestic market priorities
✅ Accelerated digital transformation
✅ Stronger balance sheet for growth
✅ Improved shareholder returns`,
	},
	{
		name:    "bajaj-markets-organic",
		phrases: []string{"bajaj markets", "organic"},
		text:    `**Bajaj Markets Organic Traffic Success Story - FY25:**

**Phenomenal Growth Trajectory:**
• Q1 FY25: Organic traffic 45% of total (baseline)
• Q2 FY25: Organic traffic 58% of total (+22% growth)
• Q3 FY25: Organic traffic 70% of total (+65% YoY)
• Q4 FY25: Organic traffic 75% of total (+85% YoY)

**Key Performance Metrics:**
📈 **Traffic Volume:** 2.5 million monthly active users
📈 **Engagement:** Session duration up 45% to 8.5 minutes
📈 **Conversion:** 18% improvement in organic visitor conversion
📈 **Rankings:** 350% improvement in search engine rankings

**Strategic Initiatives:**
1. **SEO Optimization:** Comprehensive technical & content SEO
2. **Content Marketing:** 200+ educational articles monthly
3. **Social Media:** Organic engagement rate 12.5%
4. **User Experience:** Page load speed improved by 60%
5. **Mobile Optimization:** 78% traffic now mobile-first

**Content Strategy Success:**
• Financial education content library: 1,000+ articles
• Video content: 150+ explainer videos (5M+ views)
• Webinar series: 24 sessions with 50,000+ attendees
• Insurance guides: Downloaded 300,000+ times

**Cost Efficiency:**
💰 Customer acquisition cost reduced by 35%
💰 Organic traffic CAC: ₹125 vs Paid CAC: ₹850
💰 Annual marketing savings: ₹45 crores
💰 ROI on content marketing: 420%

**Future Roadmap:**
🎯 Target 80% organic traffic by Q2 FY26
🎯 Launch AI-powered content personalization
🎯 Expand to regional languages (Hindi, Tamil, Telugu)
🎯 Integrate voice search optimization`,
	},
}

// matchBriefing returns the first briefing whose phrases all occur in text
func matchBriefing(normalized string) (briefing, bool) {
	for _, b := range briefings {
		if containsAll(normalized, b.phrases...) {
			return b, true
		}
	}
	return briefing{}, false
}
