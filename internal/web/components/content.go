package components

type processStep struct {
	Title       string
	Description string
	Duration    string
}

type feature struct {
	Title       string
	Description string
	Benefits    []string
}

type testimonial struct {
	Name    string
	Role    string
	Company string
	Content string
	Rating  int
}

type faq struct {
	Question string
	Answer   string
}

var processSteps = []processStep{
	{
		Title:       "Deep Analysis",
		Description: "We map every workflow, identify bottlenecks, and understand your current processes to design the perfect automation blueprint.",
		Duration:    "Days 1-2",
	},
	{
		Title:       "Blueprint Design",
		Description: "Custom automation architecture tailored to your specific business needs, creating a transparent process with fixed pricing.",
		Duration:    "Days 3-4",
	},
	{
		Title:       "System Development",
		Description: "Building and integrating your intelligent automation systems with existing tools, ensuring seamless operation.",
		Duration:    "Days 5-8",
	},
	{
		Title:       "Delivery & Support",
		Description: "Functional system delivered in 10 business days with full training and ongoing support for your success.",
		Duration:    "Days 9-10",
	},
}

var features = []feature{
	{
		Title:       "Streamline Your Processes with Automation",
		Description: "Automate repetitive tasks to save time and reduce errors, freeing up valuable time for your team.",
		Benefits:    []string{"40+ hours saved weekly", "99.9% accuracy rate", "24/7 operation"},
	},
	{
		Title:       "Intelligent App Integration",
		Description: "Connecting your CRM, project manager, and other apps into a single, seamless system that eliminates data silos.",
		Benefits:    []string{"Connect 100+ apps", "Real-time data sync", "Zero downtime migration"},
	},
	{
		Title:       "Bespoke Automation Solutions",
		Description: "Custom automation systems designed specifically for your unique business needs.",
		Benefits:    []string{"Tailored approach", "Proven results", "Expert solutions"},
	},
}

var tools = []string{"Relume", "Airtable", "n8n", "Google Sheets", "OpenAI", "Gemini", "Make", "Webflow", "Base44"}

var testimonials = []testimonial{
	{
		Name:    "Clotilde Boureau",
		Role:    "Project Manager",
		Company: "Unilever",
		Content: "Moses is really accommodating and can get things done quickly; I would recommend him to anyone looking for a reliable and efficient partner.",
		Rating:  5,
	},
	{
		Name:    "Patrick Borde",
		Role:    "Transformation Director",
		Company: "Unilever",
		Content: "The tools that Moses built are efficient and easy to use. He overcame the language barrier and delivered great products.",
		Rating:  5,
	},
	{
		Name:    "Guilhem Jalade",
		Role:    "Project Manager Data & AI",
		Company: "Unilever",
		Content: "It's amazing how he was able to deliver and manage multiple systems at the same time. A great problem solver with a lot of experience in the field.",
		Rating:  5,
	},
}

var faqs = []faq{
	{
		Question: "How quickly can you implement automation for my business?",
		Answer:   "Our promise is simple: a transparent process, a fixed price, and a functional system delivered in 10 business days. This includes analysis, design, development, testing, and deployment with full training.",
	},
	{
		Question: "Will the automation work with my existing software?",
		Answer:   "Yes, our systems are designed to integrate seamlessly with your current tools. We specialize in connecting your CRM, project manager, and other apps into a single, seamless system.",
	},
	{
		Question: "Do you really offer free consultations?",
		Answer:   "Absolutely! We offer complimentary consultations with no fees, available both remote and onsite.",
	},
	{
		Question: "What kind of support do you provide after implementation?",
		Answer:   "Our commitment to your success doesn't end at launch. We provide ongoing support and can modify or expand your automation systems as your business evolves.",
	},
	{
		Question: "How much technical knowledge do I need?",
		Answer:   "None. Our automation systems are designed to run independently. We provide full training and build systems that stay user-friendly while handling complex processes behind the scenes.",
	},
}
