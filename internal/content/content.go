package content

// NavLink is an in-page navigation entry. Href is always a fragment.
type NavLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// ComparisonItem pairs a status-quo problem with the matching solution.
type ComparisonItem struct {
	Problem  string `yaml:"problem"`
	Solution string `yaml:"solution"`
	Icon     string `yaml:"icon"`
}

type Product struct {
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	ImageURL    string   `yaml:"image_url"`
	Features    []string `yaml:"features"`
}

type Stat struct {
	Value  string `yaml:"value"`
	Label  string `yaml:"label"`
	Accent string `yaml:"accent"`
}

type Highlight struct {
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Tile struct {
	Label    string `yaml:"label"`
	ImageURL string `yaml:"image_url"`
	Alt      string `yaml:"alt"`
}

type Navigation struct {
	Links      []NavLink `yaml:"links"`
	DesktopCTA NavLink   `yaml:"desktop_cta"`
	MobileCTA  NavLink   `yaml:"mobile_cta"`
}

type Hero struct {
	Badge         string  `yaml:"badge"`
	Headline      string  `yaml:"headline"`
	HeadlineEmph  string  `yaml:"headline_emphasis"`
	Lead          string  `yaml:"lead"`
	ImageURL      string  `yaml:"image_url"`
	ImageAlt      string  `yaml:"image_alt"`
	PrimaryCTA    NavLink `yaml:"primary_cta"`
	SecondaryCTA  NavLink `yaml:"secondary_cta"`
	Location      string  `yaml:"location"`
	ImpactHeading string  `yaml:"impact_heading"`
	Stats         []Stat  `yaml:"stats"`
}

type ProblemSolution struct {
	Heading        string           `yaml:"heading"`
	Intro          string           `yaml:"intro"`
	StatusQuoTitle string           `yaml:"status_quo_title"`
	SolutionTitle  string           `yaml:"solution_title"`
	Items          []ComparisonItem `yaml:"items"`
}

type Technology struct {
	Badge      string      `yaml:"badge"`
	Heading    string      `yaml:"heading"`
	Intro      string      `yaml:"intro"`
	Highlights []Highlight `yaml:"highlights"`
	Partners   []string    `yaml:"partners"`
	Tiles      []Tile      `yaml:"tiles"`
}

type Catalog struct {
	Eyebrow  string    `yaml:"eyebrow"`
	Heading  string    `yaml:"heading"`
	Intro    string    `yaml:"intro"`
	Products []Product `yaml:"products"`
}

type Founder struct {
	Name       string   `yaml:"name"`
	Initials   string   `yaml:"initials"`
	Role       string   `yaml:"role"`
	Tagline    string   `yaml:"tagline"`
	Heading    string   `yaml:"heading"`
	Quote      string   `yaml:"quote"`
	Commitment []string `yaml:"commitments"`
}

type Contact struct {
	Heading      string `yaml:"heading"`
	Intro        string `yaml:"intro"`
	CardTitle    string `yaml:"card_title"`
	CardText     string `yaml:"card_text"`
	LinkLabel    string `yaml:"link_label"`
	LinkURL      string `yaml:"link_url"`
	ResponseNote string `yaml:"response_note"`
}

type Footer struct {
	Blurb      string    `yaml:"blurb"`
	QuickLinks []NavLink `yaml:"quick_links"`
	Address    []string  `yaml:"address"`
	Landmark   string    `yaml:"landmark"`
	Tagline    string    `yaml:"tagline"`
}

// Site is the complete, immutable content of the page. It is built once at
// startup and handed to the page composition.
type Site struct {
	Brand           string          `yaml:"brand"`
	BrandAccent     string          `yaml:"brand_accent"`
	Title           string          `yaml:"title"`
	Description     string          `yaml:"description"`
	Nav             Navigation      `yaml:"nav"`
	Hero            Hero            `yaml:"hero"`
	ProblemSolution ProblemSolution `yaml:"problem_solution"`
	Technology      Technology      `yaml:"technology"`
	Catalog         Catalog         `yaml:"catalog"`
	Founder         Founder         `yaml:"founder"`
	Contact         Contact         `yaml:"contact"`
	Footer          Footer          `yaml:"footer"`
}

// BrandName joins the brand and its accent word.
func (s Site) BrandName() string {
	if s.BrandAccent == "" {
		return s.Brand
	}
	return s.Brand + " " + s.BrandAccent
}

// Default returns the literal site content. Every call builds fresh slices,
// so a caller mutating its copy never affects another.
func Default() Site {
	return Site{
		Brand:       "SEKAM",
		BrandAccent: "MAS",
		Title:       "SEKAM MAS - Turning Perlis Agri-Waste into Sustainable Gold",
		Description: "SEKAM MAS upcycles Perlis rice husk into smokeless bio-energy briquettes and biodegradable eco-packaging.",
		Nav: Navigation{
			Links: []NavLink{
				{Name: "Our Mission", Href: "#mission"},
				{Name: "Solutions", Href: "#solutions"},
				{Name: "R&D Authority", Href: "#tech"},
				{Name: "Products", Href: "#products"},
				{Name: "Founder", Href: "#founder"},
			},
			DesktopCTA: NavLink{Name: "Partner With Us", Href: "#contact"},
			MobileCTA:  NavLink{Name: "Contact Founder", Href: "#contact"},
		},
		Hero: Hero{
			Badge:         "RMK-13 Strategic Partner",
			Headline:      "Turning Perlis Agri-Waste into",
			HeadlineEmph:  "Sustainable Gold",
			Lead:          "Bridging Perlis’ agricultural heritage with global industrial standards. We transform 100,000 tons of rice husk into high-performance bio-energy and eco-packaging.",
			ImageURL:      "https://images.unsplash.com/photo-1500382017468-9049fed747ef?q=80&w=2832&auto=format&fit=crop",
			ImageAlt:      "Perlis Paddy Field",
			PrimaryCTA:    NavLink{Name: "Explore Products", Href: "#products"},
			SecondaryCTA:  NavLink{Name: "Our Technology", Href: "#tech"},
			Location:      "Chuping Valley Industrial Area (CVIA) • Near Perlis Inland Port (PIP)",
			ImpactHeading: "Circular Economy Impact",
			Stats: []Stat{
				{Value: "100k+", Label: "Tons/Year Waste Upcycled", Accent: "yellow"},
				{Value: "20%", Label: "Fuel Cost Savings", Accent: "green"},
				{Value: "100%", Label: "Biodegradable Packaging", Accent: "blue"},
				{Value: "Top 38%", Label: "Of National Paddy Output", Accent: "purple"},
			},
		},
		ProblemSolution: ProblemSolution{
			Heading:        "The Problem-Solution Matrix",
			Intro:          "Efficient waste management is no longer just an environmental goal; it is a strategic necessity for maintaining profit margins in a competitive, carbon-conscious market.",
			StatusQuoTitle: "The Status Quo",
			SolutionTitle:  "The SEKAM MAS Way",
			Items: []ComparisonItem{
				{Problem: "Open Burning Pollution", Solution: "Carbon-Neutral Upcycling", Icon: "lucide--flame"},
				{Problem: "Volatile Energy Costs", Solution: "20% Guaranteed Savings", Icon: "lucide--trending-up"},
				{Problem: "Single-Use Plastic Stigma", Solution: "Biodegradable Eco-Packaging", Icon: "lucide--recycle"},
				{Problem: "High Ash & Smoke", Solution: "<10% Residue & Smokeless", Icon: "lucide--shield-check"},
			},
		},
		Technology: Technology{
			Badge:   "Technical Authority",
			Heading: "Engineered Precision: The UniMAP R&D Partnership",
			Intro:   "SEKAM MAS solidifies market authority through strategic partnership with the UniMAP TVET Centre and UniMAP-NanoMalaysia Industrial Laboratory. We don't just guess; we validate.",
			Highlights: []Highlight{
				{Icon: "lucide--flame", Color: "orange", Title: "High Calorific Value", Description: "Validated at 4,200 - 4,500 kcal/kg. Equivalent to high-grade wood charcoal."},
				{Icon: "lucide--droplets", Color: "blue", Title: "Moisture Optimization", Description: "Precision drying maintains levels at <8%, ensuring reliable ignition and no sparks."},
				{Icon: "lucide--shield-check", Color: "green", Title: "Safe & Organic", Description: "100% organic with food-grade starch binders. Non-toxic for food preparation."},
			},
			Partners: []string{"UniMAP TVET", "NanoMalaysia", "NCIA", "NTIC Grant Recipient"},
			Tiles: []Tile{
				{Label: "Scientific Validation", Alt: "Lab", ImageURL: "https://images.unsplash.com/photo-1622323758558-8d1513e66e8e?q=80&w=2000&auto=format&fit=crop"},
				{Label: "Eco Compliance", Alt: "Clean Energy", ImageURL: "https://images.unsplash.com/photo-1542601906990-b4d3fb7d5c73?q=80&w=2000&auto=format&fit=crop"},
				{Label: "Industrial Scale", Alt: "Industry", ImageURL: "https://images.unsplash.com/photo-1532094349884-543bc11b234d?q=80&w=2000&auto=format&fit=crop"},
				{Label: "Pure Materials", Alt: "Nature", ImageURL: "https://images.unsplash.com/photo-1595278069441-2cf29f8005a4?q=80&w=2000&auto=format&fit=crop"},
			},
		},
		Catalog: Catalog{
			Eyebrow: "Our Portfolio",
			Heading: "Sustainable Energy & Packaging",
			Intro:   "Designed for maximum ESG impact. From high-volume industrial energy to high-growth eco-conscious retail.",
			Products: []Product{
				{
					Title:       "5kg Premium Briquettes",
					Category:    "Retail / BBQ",
					ImageURL:    "https://images.unsplash.com/photo-1599939571322-792a326991f2?q=80&w=2000&auto=format&fit=crop",
					Description: "Designed for home BBQ enthusiasts and premium glamping sites. Smokeless and safe for food.",
					Features: []string{
						"Smokeless & Non-Toxic",
						"Consistent Heat",
						"Perfect for Glamping",
						"Clean Handling",
					},
				},
				{
					Title:       "10kg Industrial Briquettes",
					Category:    "Commercial / B2B",
					ImageURL:    "https://images.unsplash.com/photo-1616248238127-147814343166?q=80&w=2000&auto=format&fit=crop",
					Description: "Industrial-grade solution for restaurants and boilers. Significant performance differentiator.",
					Features: []string{
						"2x Burn Time vs Charcoal",
						"Up to 4 Hours Duration",
						"No Mid-Service Refueling",
						"Cost-Saving for Boilers",
					},
				},
				{
					Title:       "Eco-Packaging Solutions",
					Category:    "F&B / Agriculture",
					ImageURL:    "https://images.unsplash.com/photo-1605333190479-5092a0651280?q=80&w=2000&auto=format&fit=crop",
					Description: "Biodegradable takeaway solutions and seedling pots. Eliminate single-use plastics entirely.",
					Features: []string{
						"100% Biodegradable",
						"BPA-Free & Plastic-Free",
						"Made from Husk Fiber",
						"ISO & SGS Standards Ready",
					},
				},
			},
		},
		Founder: Founder{
			Name:     "Muhammad Faris",
			Initials: "MF",
			Role:     "Founder & CEO",
			Tagline:  "Son of Perlis",
			Heading:  "The Vision: Beyond Agriculture",
			Quote:    "I view our landscape not just as farmland, but as a frontier for the 13th Malaysia Plan era. My mission is to move Perlis up the value chain, transitioning from primary agriculture to high-value green manufacturing. The 'waste' we were burning is a goldmine for the circular economy.",
			Commitment: []string{
				"High-Skilled Jobs for Perlis Youth",
				"Community Wealth Retention",
			},
		},
		Contact: Contact{
			Heading:      `Join the "Waste-to-Wealth" Movement`,
			Intro:        "Whether you are a rice mill manager, restaurant owner, or investor. SEKAM MAS provides a validated, scalable opportunity.",
			CardTitle:    "Direct Founder Access",
			CardText:     "Discuss specific partnerships or bulk orders directly with leadership.",
			LinkLabel:    "Chat on WhatsApp",
			LinkURL:      "https://wa.me/60123456789",
			ResponseNote: "Typical response time: < 2 hours",
		},
		Footer: Footer{
			Blurb: "From Perlis to the World. Engineering the future of sustainable energy and bio-packaging through advanced agricultural upcycling.",
			QuickLinks: []NavLink{
				{Name: "Our Mission", Href: "#mission"},
				{Name: "Products", Href: "#products"},
				{Name: "Technology", Href: "#tech"},
				{Name: "Contact", Href: "#contact"},
			},
			Address:  []string{"Chuping Valley Industrial Area (CVIA)", "Perlis, Malaysia"},
			Landmark: "Near Perlis Inland Port (PIP)",
			Tagline:  "All Rights Reserved. Built for the Green Economy.",
		},
	}
}
