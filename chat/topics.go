package chat

// Stock replies shown before the first message and for the special cases
const (
	WelcomeReply  = "Hi! I'm Amro's AI assistant. Ask me about his experience, skills, or even his farming hobby! 🚜"
	GreetingReply = "Hello! I'm here to tell you all about Amro. What would you like to know?"
	ThanksReply   = "You're welcome! Is there anything else you'd like to know about Amro?"
)

// suggestionCount is how many leading keywords the fallback reply lists
const suggestionCount = 4

// DefaultTopics returns the built-in topic table in match order
func DefaultTopics() []Topic {
	return []Topic{
		{Keyword: "experience", Replies: []string{
			"Amro has 8+ years in DevOps, starting from QA and growing into a Head of DevOps role at Beamr.",
			"He's transformed from finding bugs to preventing them at scale!",
			"His journey: QA Engineer → Automation Engineer → Senior DevOps → Head of DevOps",
		}},
		{Keyword: "skills", Replies: []string{
			"His top skills include Kubernetes, AWS, Python, and saving companies tons of money!",
			"He's a master of Terraform, Crossplane, Docker, and all things cloud-native.",
			"Fun fact: He convinced management that Crossplane > Terraform and was proven right!",
		}},
		{Keyword: "achievements", Replies: []string{
			"Saved 70% on compute costs with GPU spot instances at Beamr",
			"Got SOC2 certified on the first try - auditors were impressed!",
			"Saved Minute Media ~$10k/week by fixing their CI system",
		}},
		{Keyword: "farming", Replies: []string{
			"Yes, he really does farm avocados and olives on weekends! 🥑🫒",
			"He maintains his tractor like production servers - regular patches included!",
			"He says avocado trees have better uptime than most production servers 😄",
		}},
		{Keyword: "family", Replies: []string{
			"Married to Noura, a fashion designer and salon manager",
			"Father to Zeina (7) and Lina (5) - future engineers in training!",
			"His work-life balance is 100% - DevOps by day, FarmOps by weekend",
		}},
		{Keyword: "contact", Replies: []string{
			"Email: amr.massalha@gmail.com",
			"LinkedIn: linkedin.com/in/amro-massalha",
			"He's open to interesting challenges that break the status quo!",
		}},
		{Keyword: "hiring", Replies: []string{
			"Amro is open to Head of DevOps and Cloud Architect roles",
			"He's looking for challenges that make a real impact",
			"Companies that value both technical excellence and work-life balance are his jam",
		}},
		{Keyword: "joke", Replies: []string{
			"Why do DevOps engineers make great farmers? Because they're experts at growing scalable systems! 🌱",
			"Amro's deployment philosophy: 'If it works in the avocado field, it'll work in production!'",
			"His tractor runs Kubernetes... just kidding! But he does treat it like a production server.",
		}},
	}
}
