// Package content holds the copy shown on the landing page.
package content

type Feature struct {
	Title       string
	Description string
	Icon        string
	// Gradient is the tailwind gradient applied to the card.
	Gradient string
}

type Stat struct {
	Number string
	Label  string
}

type Step struct {
	Number      string
	Title       string
	Description string
	Icon        string
}

type Course struct {
	Title    string
	Price    string
	Duration string
	Features []string
	Gradient string
}

// Landing is everything the landing page renders besides the modal.
type Landing struct {
	Title           string
	Tagline         string
	Features        []Feature
	Stats           []Stat
	Steps           []Step
	Courses         []Course
	CommunityTags   []string
	CommunityStats  []Stat
	CallToAction    string
	CallToActionSub string
}

// Default returns the referral program page copy.
func Default() Landing {
	return Landing{
		Title:   "Refer & Earn Rewards",
		Tagline: "Share the knowledge, earn amazing rewards, and help others succeed in their learning journey!",
		Features: []Feature{
			{"Refer Friends", "Share your unique referral link with friends", "🤝", "from-blue-500 to-purple-500"},
			{"They Enroll", "When they join any course using your link", "📚", "from-purple-500 to-pink-500"},
			{"Earn Rewards", "Get exciting rewards for successful referrals", "🎁", "from-pink-500 to-orange-500"},
		},
		Stats: []Stat{
			{"500+", "Happy Students"},
			{"₹50,000", "Rewards Given"},
			{"95%", "Success Rate"},
		},
		Steps: []Step{
			{"1", "Sign Up", "Create your free account", "👤"},
			{"2", "Choose Course", "Select from our premium courses", "📚"},
			{"3", "Share Link", "Send to your friends", "🔗"},
			{"4", "Earn Rewards", "Get amazing bonuses", "💎"},
		},
		Courses: []Course{
			{
				Title:    "Full Stack Development",
				Price:    "₹29,999",
				Duration: "6 months",
				Features: []string{"MERN Stack", "Real Projects", "Job Assistance"},
				Gradient: "from-blue-600 to-indigo-600",
			},
			{
				Title:    "Data Science Pro",
				Price:    "₹34,999",
				Duration: "8 months",
				Features: []string{"Python", "Machine Learning", "Live Projects"},
				Gradient: "from-purple-600 to-pink-600",
			},
			{
				Title:    "UI/UX Design",
				Price:    "₹24,999",
				Duration: "4 months",
				Features: []string{"Figma", "Portfolio", "Internship"},
				Gradient: "from-orange-600 to-red-600",
			},
		},
		CommunityTags: []string{
			"24/7 Support",
			"Expert Mentors",
			"Live Sessions",
			"Networking",
			"Job Updates",
			"Events",
		},
		CommunityStats: []Stat{
			{"15K+", "Community Members"},
			{"200+", "Daily Active Users"},
			{"50+", "Live Events Monthly"},
			{"100%", "Satisfaction Rate"},
		},
		CallToAction:    "Start Referring Now",
		CallToActionSub: "Join thousands of successful referrers today!",
	}
}
