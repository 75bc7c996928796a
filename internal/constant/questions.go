package constant

import "marketing-agent-be/internal/entity"

// Questions maps an agent category to its intake catalog.
var Questions = map[string][]entity.Question{
	AgentBrand:   BrandQuestions,
	AgentDigital: DigitalQuestions,
}

var BrandQuestions = []entity.Question{
	{
		Id:          "company_overview",
		Question:    "What is the company name and what does it do?",
		Placeholder: "e.g., Markhor - A brand representing Pakistani military values, operating in the defense sector...",
		Help:        "Provide company name, industry, and what the company does",
		Required:    true,
	},
	{
		Id:       "brand_wheel",
		Question: "Complete the Brand Wheel (5 components):",
		Placeholder: `Attributes (3-5): Power, Discipline, Resilience...
Benefits (3-5): Enhanced national pride, quality assurance...
Values (3-5): Honor, Commitment, Excellence...
Personality (3-5): Authoritative, Inspirational, Bold...
Essence (1 phrase): "Strength in Unity"`,
		Help:     "This framework helps define your brand identity comprehensively",
		Required: true,
	},
	{
		Id:       "target_personas",
		Question: "Describe 2-3 target audience personas in detail:",
		Placeholder: `Persona 1: The Veteran
- Demographics: Age 45-60, High School Diploma, Urban, $40K-$70K income
- Background: Retired military personnel
- Goals: Maintain connection with military life
- Challenges: Reintegrating into civilian life
- Motivations: Inspire younger generations

Persona 2: The Young Patriot
- Demographics: Age 18-30, Bachelor's degree, Urban/Suburban, $20K-$40K
- ...`,
		Help:     "Include demographics, background, goals, challenges, and motivations",
		Required: true,
	},
	{
		Id:       "competitors",
		Question: "Who are 2-3 main competitors and what can you learn from them?",
		Placeholder: `Competitor 1: Pakistan Army Welfare Trust
- What they offer: Housing, healthcare, educational services
- Strengths: Government backing, extensive network
- Key learning: Community support enhances loyalty

Competitor 2: Armed Forces Foundation
- ...`,
		Help:     "Analyze competitors to understand the competitive landscape",
		Required: true,
	},
	{
		Id:       "positioning",
		Question: "Complete your positioning statement:",
		Placeholder: `[Brand]'s [offering] is the only [category] that [unique benefit].
e.g., Markhor's products are the only military-inspired goods that instill national pride while supporting local economy.`,
		Help:     "Use the formula: [Brand]'s [offering] is the only [category] that [benefit]",
		Required: true,
	},
	{
		Id:          "brand_story",
		Question:    "Tell your brand story (2-3 paragraphs):",
		Placeholder: "What inspired your brand? What problem do you solve? What emotional connection should it create? Include customer pain points you address.",
		Help:        "This should spark an emotional reaction and explain your purpose",
		Required:    true,
	},
	{
		Id:       "brand_values",
		Question: "What are your 3-5 core brand values with descriptions?",
		Placeholder: `Honor: We uphold the highest standards of integrity...
Commitment: We are dedicated to serving our community...
Excellence: We strive for highest quality...`,
		Help:     "Avoid clichés like 'honest' or 'transparent' - be specific and meaningful",
		Required: true,
	},
	{
		Id:          "brand_mission",
		Question:    "What is your brand mission?",
		Placeholder: "Where is your brand heading? What do you aim to achieve? (2-3 sentences)",
		Help:        "Describe your long-term vision and goals",
		Required:    true,
	},
	{
		Id:          "touchpoints",
		Question:    "List 5-8 brand touchpoints (where customers interact with you):",
		Placeholder: "Website, Social Media, Events, Retail Outlets, Customer Service, Mobile App, Packaging, Email...",
		Help:        "All places where customers come in contact with your brand",
		Required:    true,
	},
	{
		Id:       "brand_messaging",
		Question: "What are your 3-5 key brand messages?",
		Placeholder: `"Embrace the Spirit of the Military"
"Strength in Every Purchase"
"Support Local, Honor Tradition"
...`,
		Help:     "These are core messages you'll communicate consistently",
		Required: true,
	},
	{
		Id:       "tone_of_voice",
		Question: "Define your Tone of Voice (3-5 characteristics with do's and don'ts):",
		Placeholder: `Authoritative - Speaks with confidence | Do: Use clear, strong language | Don't: Show uncertainty
Inspirational - Motivates audience | Do: Share success stories | Don't: Be overly critical
Respectful - Acknowledges sacrifices | Do: Show appreciation | Don't: Trivialize experiences
...`,
		Help:     "How your brand should communicate with the audience",
		Required: true,
	},
	{
		Id:          "additional_context",
		Question:    "Any additional context about your industry, market, or company? (Optional)",
		Placeholder: "Any other relevant information that would help create comprehensive brand guidelines...",
		Help:        "Optional: Any extra details that might be helpful",
		Required:    false,
	},
}

var DigitalQuestions = []entity.Question{
	{
		Id:          "company_background",
		Question:    "Provide company background and existing marketing challenges:",
		Placeholder: "Company overview, industry position, current challenges (e.g., low brand awareness, limited digital presence, lead generation issues)...",
		Section:     "Introduction",
		Required:    true,
	},
	{
		Id:       "products_services",
		Question: "List all products/services with brief descriptions:",
		Placeholder: `Product 1: Early Childhood Diploma - Comprehensive training for ages 2.5-6, target: aspiring teachers
Product 2: Toddler Assistants Course - 6-week intro course, target: career changers
...`,
		Section:  "Introduction",
		Required: true,
	},
	{
		Id:       "marketing_goals",
		Question: "What are 3-5 SMART marketing goals?",
		Placeholder: `Goal 1: Increase website traffic by 50% in 6 months through SEO and content marketing
Goal 2: Generate 100 qualified leads per month by end of Q2 through landing pages
Goal 3: Boost social media engagement by 30% in 4 months through consistent posting
...`,
		Section:  "Introduction",
		Help:     "Specific, Measurable, Achievable, Relevant, Time-bound",
		Required: true,
	},
	{
		Id:       "swot",
		Question: "Complete SWOT Analysis:",
		Placeholder: `Strengths: Experienced leadership, MACTE accreditation, comprehensive curriculum, high-quality instruction...
Weaknesses: Limited digital presence, low brand awareness, new endeavor, no lead generation yet...
Opportunities: Growing Montessori education demand, digital marketing leverage, partnerships...
Threats: Strong competition, economic factors, changing educational trends, regulatory changes...`,
		Section:  "SWOT Analysis",
		Help:     "List 3-5 items for each category",
		Required: true,
	},
	{
		Id:       "competitive_analysis",
		Question: "Describe 2-3 main competitors and key learnings:",
		Placeholder: `Competitor 1: Canadian Montessori Teacher Education Institute
- Location: Mississauga, Ontario | MACTE accredited
- Offers: Early Childhood, Infant & Toddler, Elementary diplomas
- Strengths: Small class sizes, experienced faculty, flexible scheduling
- Learning: Personalized instruction attracts adult learners

Competitor 2: ...`,
		Section:  "Market Analysis",
		Required: true,
	},
	{
		Id:       "target_customers",
		Question: "Describe 2-3 detailed customer personas:",
		Placeholder: `Persona 1: Aspiring Montessori Educator
- Demographics: 25-35, Bachelor's in ECE, Urban areas, limited budget
- Background: Recent grad, passionate about ECE, some teaching experience
- Goals: Get Montessori certification, enhance skills, secure position
- Challenges: Limited finances, balancing work/study, finding in-person training
- Motivations: Make impact on children, committed to Montessori philosophy

Persona 2: Career Changer
- Demographics: 35-45, Bachelor's in non-education field, suburban, has kids
- ...`,
		Section:  "Market Analysis",
		Required: true,
	},
	{
		Id:       "buying_cycle",
		Question: "Describe the customer buying cycle:",
		Placeholder: `Awareness: Discover through social media, referrals, Google search - triggered by career change or child's birth
Consideration: Compare programs, read reviews, attend webinars (weeks to months)
Decision: Apply after researching accreditation and career outcomes
Post-Enrollment: Engage with content, join community, become advocates`,
		Section:  "Market Analysis",
		Required: true,
	},
	{
		Id:          "usp",
		Question:    "What is your Unique Selling Proposition?",
		Placeholder: "e.g., Only MACTE-accredited in-person Montessori training with 30+ years of expertise, focusing on pure Montessori philosophy",
		Section:     "Brand Positioning",
		Required:    true,
	},
	{
		Id:       "brand_relevance",
		Question: "How is your brand currently perceived vs. how you want it perceived?",
		Placeholder: `Current: Niche institution known for dedication to pure Montessori, experienced leadership, supportive environment
Desired: Premier Montessori training destination, innovative yet traditional, accessible, community-oriented, recognized leader`,
		Section:  "Brand Positioning",
		Required: true,
	},
	{
		Id:          "website_status",
		Question:    "Website status and needs:",
		Placeholder: "e.g., Basic site exists, needs SEO optimization, mobile improvements, better CTAs, lead capture forms",
		Section:     "Current Status",
		Required:    true,
	},
	{
		Id:          "social_media_status",
		Question:    "Social media presence and needs:",
		Placeholder: "e.g., Active on Facebook & Instagram but inconsistent posting, need content calendar and engagement strategy",
		Section:     "Current Status",
		Required:    true,
	},
	{
		Id:          "email_status",
		Question:    "Email marketing status and needs:",
		Placeholder: "e.g., Have 500 subscribers on Mailchimp, need segmentation, automation, and regular newsletters",
		Section:     "Current Status",
		Required:    true,
	},
	{
		Id:          "other_channels",
		Question:    "SEO, blog, and other channel status:",
		Placeholder: "SEO: Not optimized, need keyword research | Blog: Have blog but irregular posts | Other: Plan to do webinars, no paid ads yet",
		Section:     "Current Status",
		Required:    true,
	},
	{
		Id:          "marketing_budget",
		Question:    "What is the monthly/annual marketing budget?",
		Placeholder: "e.g., $5,000/month total, willing to allocate $2,000 for paid ads, rest for content creation and tools",
		Section:     "Budget",
		Required:    true,
	},
	{
		Id:          "friction_points",
		Question:    "Any organizational, process, or resource challenges? (Optional)",
		Placeholder: "e.g., Small team (2 people), limited design resources, slow content approval process, outdated CRM system",
		Section:     "Budget",
		Required:    false,
	},
	{
		Id:          "additional_context",
		Question:    "Any additional context or specific requirements? (Optional)",
		Placeholder: "Timeline expectations, upcoming launches, specific campaigns planned, industry regulations, etc.",
		Section:     "Additional",
		Required:    false,
	},
}
