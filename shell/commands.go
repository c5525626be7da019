package shell

import (
	"time"
)

// PickMarker is the output line replaced by one random entry of Command.Pick
const PickMarker = "{pick}"

// Prompt prefixes every echoed command
const Prompt = "$ "

// notFound are the unknown-command replies, %s is the normalized command
var notFound = []string{
	`Command not found: %s. Try "help" for available commands.`,
	`bash: %s: command not found. Maybe try sudo? (just kidding)`,
	`'%s' is not recognized. Did you mean "coffee"? ☕`,
	`Error: %s not found. Have you tried turning it off and on again?`,
}

// BootLine is one line of the startup sequence, shown Delay after Boot
// Greet prefixes the text with the time-of-day greeting
type BootLine struct {
	Text  string
	Delay time.Duration
	Greet bool
}

// BootSequence is the startup banner in display order
var BootSequence = []BootLine{
	{Text: "Welcome to Amro's DevOps Terminal v2.0 🚀", Delay: 0, Greet: true},
	{Text: "Initializing systems... (unlike my first production deploy)", Delay: 500 * time.Millisecond},
	{Text: "[OK] Kubernetes clusters online", Delay: 1000 * time.Millisecond},
	{Text: "[OK] Coffee levels optimal ☕", Delay: 1500 * time.Millisecond},
	{Text: "[OK] Spot instances running (70% cheaper!)", Delay: 2000 * time.Millisecond},
	{Text: "[OK] All systems green... for now 😅", Delay: 2500 * time.Millisecond},
	{Text: "", Delay: 2700 * time.Millisecond},
	{Text: `Type "help" for commands or "joke" for DevOps wisdom`, Delay: 2900 * time.Millisecond},
}

var (
	skillsCloud      = "AWS (EC2, Lambda, EKS, S3), Kubernetes, Terraform, Crossplane, AWS Batch"
	skillsDevOps     = "Docker, Helm, Karpenter, KEDA, Jenkins, GitLab CI, ArgoCD"
	skillsBackend    = "Python (my go-to), Go (when speed matters), Bash (when lazy), KCL, Linux"
	skillsMonitoring = "Datadog, Prometheus/Grafana, CloudWatch, ELK Stack, Slack Bots"
)

type project struct {
	title, description, tech, impact string
}

var projects = []project{
	{"GPU Spot Instance Revolution", "Broke down monolithic app into microservices on GPU spot instances at Beamr",
		"Kubernetes, Karpenter, KEDA, AWS, Go", "70% compute cost reduction 🎉"},
	{"SOC2 Certification Speedrun", "Led Beamr through SOC2 certification on first attempt - auditors were impressed!",
		"Security Scanning, IAM Policies, Compliance, Documentation", "Passed on first try (rare achievement)"},
	{"The $10k/Week CI/CD Rescue", "Fixed Minute Media's bleeding CI system with smarter build strategies",
		"Jenkins, GitLab CI, Python, Build Optimization", "Saved ~$10k weekly on builds"},
	{"Crossplane > Terraform Migration", "Convinced skeptical management to switch IaC tools - best decision ever",
		"Crossplane, KCL, AWS, Custom Operators", "Zero-downtime AWS migration"},
	{"The Slack Bot People Love", "Built deployment tracker that makes deployments fun (yes, really)",
		"Python, Slack API, ArgoCD, Webhooks", "Team happiness: 📈"},
	{"From CloudWatch to Datadog", "Led observability transformation - now we actually know what's happening",
		"Datadog, APM, Distributed Tracing, Custom Dashboards", "MTTR: 4hr → 15min"},
	{"Life/Work Balance Orchestration", "Successfully deployed work-life balance using advanced scheduling algorithms",
		"Family First, Weekend Farming, Avocado Trees, Community Time", "Happiness: ∞ | Stress: null"},
}

func projectLines() []string {
	out := make([]string, 0, len(projects)*5)
	for _, p := range projects {
		out = append(out,
			"📁 "+p.title,
			"   "+p.description,
			"   Tech: "+p.tech,
			"   Impact: "+p.impact,
			"",
		)
	}
	return out
}

var jokes = []string{
	`"It works on my machine" - Ancient DevOps Proverb`,
	"There's no place like 127.0.0.1",
	"To err is human, to really mess up requires Kubernetes",
	"I don't always test my code, but when I do, I do it in production",
	"99 little bugs in the code, 99 little bugs... Fix one bug, compile again, 117 little bugs in the code",
	`DevOps: Turning "It's not my problem" into "It's everyone's problem"`,
	"My code doesn't have bugs, it just develops random features",
	"DNS: It's always DNS. Even when it's not DNS, it's DNS.",
	"My avocado trees have better uptime than most production servers",
	`Teaching my daughters about Git: "No sweetie, you can't just force push to daddy's branch"`,
	"Wife asked why I name my servers. I said it's easier to mourn them when they die.",
	"I treat my tractor like my servers: regular maintenance, monitoring, and prayer",
}

// DefaultCommands returns the built-in command table in help order
func DefaultCommands() []Command {
	return []Command{
		{Name: "help", Output: []string{
			"Available commands:",
			"  about     - My story (QA → DevOps transformation)",
			"  skills    - Technical arsenal (the fun stuff)",
			"  projects  - Things I've built/fixed/saved",
			"  work      - Career journey",
			"  life      - Beyond the terminal (family & farm) 🌳",
			"  contact   - Let's connect!",
			"  joke      - DevOps humor",
			"  coffee    - Brew some virtual coffee ☕",
			"  ping      - Check system status",
			"  whoami    - Complete system info 😊",
			"  clear     - Clear terminal",
			"  resume    - Download my CV",
			"",
			`Pro tip: Try "life" to see what I do when not debugging! 🚜`,
		}},
		{Name: "about", Output: []string{
			"Amro Massalha - Head of DevOps @ Beamr",
			"",
			"🚀 8+ years turning infrastructure chaos into scalable solutions",
			"📍 Based in Israel, breaking prod... I mean, fixing infrastructure globally",
			"🔄 Started in QA - now I prevent the bugs before they're written",
			"👪 Powered by family love and homegrown avocados",
			"",
			`My approach: "Start simple, iterate fast, measure everything"`,
			"",
			"Recent wins:",
			"• Saved 70% on compute with GPU spot instances (CFO loves me)",
			"• Migrated to AWS with ZERO downtime (yes, really)",
			"• Made deployments so smooth, devs actually enjoy them",
			"• Got SOC2 certified on first try (auditors were shocked)",
			"• Built a life where debugging code and growing avocados coexist",
			"",
			"Languages: English, Arabic, Hebrew (easier than Python 2→3 migration)",
		}},
		{Name: "skills", Output: []string{
			"Technical Arsenal (aka my daily toolkit):",
			"",
			"☁️  Cloud & Infrastructure:",
			"   " + skillsCloud,
			"",
			"🔧 DevOps Toolchain:",
			"   " + skillsDevOps,
			"",
			"💻 Languages & Systems:",
			"   " + skillsBackend,
			"",
			"📊 Monitoring & Observability:",
			"   " + skillsMonitoring,
			"",
			"Special mention: Good networking knowledge (saves you at 3am)",
		}},
		{Name: "projects", Output: projectLines()},
		{Name: "work", Output: []string{
			"Career Journey:",
			"",
			"🚀 Head of DevOps @ Beamr (2023 - Present)",
			"   Running the cloud show. Inherited basic Lambda setup,",
			"   built full K8s with GPU acceleration. Convinced management",
			"   Crossplane > Terraform (they were skeptical, now believers)",
			"",
			"💰 Senior DevOps @ Minute Media (2021 - 2023)",
			"   Came to fix bleeding CI system. Saved ~$10k/week.",
			"   Also taught teams to actually talk to each other.",
			"",
			"🔧 Automation Engineer @ BMC Software (2019 - 2021)",
			"   Enterprise-scale testing. Learned networking the hard way.",
			"",
			"🐛 QA Engineer @ Galil Software (2015 - 2019)",
			"   Foundation years. Where I learned to break things properly.",
		}},
		{Name: "life", Aliases: []string{"family", "farm", "personal"}, Output: []string{
			"🌟 Life Beyond the Terminal",
			"",
			"👪 Family First:",
			"Married to Noura - fashion designer, salon manager, and the most",
			`beautiful soul who somehow tolerates my "just one more deployment" promises.`,
			"Blessed with two amazing daughters:",
			"  • Zeina (7) - Already debugging my excuses better than any QA",
			`  • Lina (5) - Master of asking "why?" (future engineer confirmed)`,
			"",
			"🚜 Weekend Warrior:",
			"When I'm not orchestrating containers, I'm orchestrating nature.",
			`You'll find me in my fields, where "deployment" means planting season:`,
			"  • 🥑 Avocado trees (scaling vertically, just like microservices)",
			"  • 🫒 Olive groves (high availability, zero downtime for centuries)",
			"  • 🌾 Helping neighbors with wheat harvest (community > competition)",
			"",
			"🔧 From DevOps to FarmOps:",
			"I maintain my tractor like production servers - regular patches included!",
			"Tools of choice: Tractor, plow, sprayer (the original automation tools)",
			"Even my car gets CI/CD treatment - continuous inspection, delivery guaranteed!",
			"",
			"💚 Life Philosophy:",
			"Whether it's Kubernetes pods or avocado trees, growth requires patience,",
			"proper maintenance, and occasionally getting your hands dirty.",
			"",
			"The best systems - technical or natural - are those we nurture with care.",
		}},
		{Name: "contact", Output: []string{
			"Let's build something awesome together!",
			"",
			"📧 Email: amr.massalha@gmail.com",
			"💼 LinkedIn: linkedin.com/in/amro-massalha",
			"🐙 GitHub: github.com/AmroMassalha",
			"",
			"Currently: Head of DevOps @ Beamr",
			"Open to: Interesting challenges that break the status quo",
			"",
			`Final thought: "I solve problems. Sometimes with code,`,
			`sometimes with architecture, sometimes by just talking to people."`,
		}},
		{Name: "joke", Pick: jokes, Output: []string{
			"Random DevOps wisdom:",
			"",
			PickMarker,
			"",
			`Type "joke" again for more wisdom/trauma 😅`,
		}},
		{Name: "coffee", Sound: "success", Output: []string{
			"☕ Brewing virtual coffee...",
			"",
			"   ( (",
			"    ) )",
			"  ........",
			"  |      |]",
			`  \      /`,
			"   `----'",
			"",
			"Coffee is ready! Productivity +100% 🚀",
		}},
		{Name: "ping", Output: []string{
			"PING amro-massalha.dev (127.0.0.1): 56 data bytes",
			"64 bytes from 127.0.0.1: icmp_seq=0 ttl=64 time=0.042 ms",
			"64 bytes from 127.0.0.1: icmp_seq=1 ttl=64 time=0.037 ms",
			"64 bytes from 127.0.0.1: icmp_seq=2 ttl=64 time=0.033 ms",
			"",
			"--- amro-massalha.dev ping statistics ---",
			"3 packets transmitted, 3 packets received, 0.0% packet loss",
			"round-trip min/avg/max/stddev = 0.033/0.037/0.042/0.004 ms",
			"",
			"Status: All systems operational! 🟢",
		}},
		{Name: "whoami", Output: []string{
			"amro@life:~$ whoami --verbose",
			"",
			"uid=1985(amro) gid=1000(devops) groups=1000(devops),",
			"2015(husband),2017(father),2019(farmer),2023(head-of-devops)",
			"",
			"Full Name: Amro Massalha",
			"Roles: Head of DevOps, Husband, Father, Weekend Farmer",
			"Location: /home/israel",
			"Uptime: 8+ years in tech, 40+ years in life",
			"Load Average: Perfectly balanced (work/life/family)",
			"",
			"Current Processes:",
			"  PID 1: Being awesome dad to Zeina & Lina",
			"  PID 2: Supporting Noura's fashion empire",
			"  PID 3: Scaling Beamr's infrastructure",
			"  PID 4: Growing the best avocados in the region",
			"  PID 5: Helping neighbors with their harvest",
			"",
			"Exit Code: Still running (hopefully for many years) 💚",
		}},
		{Name: "clear", Clear: true},
		{Name: "resume", Output: []string{
			"Opening CV... (In real deployment, this downloads PDF)",
		}},
	}
}
