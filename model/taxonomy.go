package model

// CategoryDescription is one category of a brand's taxonomy. The description
// text is fed verbatim into the classification prompt.
type CategoryDescription struct {
	Name        string
	Description string
}

// Brand maps a brand name to its ordered category taxonomy. Brands are
// static configuration, never mutated at runtime.
type Brand struct {
	Name       string
	Categories []CategoryDescription
}

// HasCategory reports whether the named category is part of this brand's
// taxonomy. Override-table hits and heuristic verdicts are gated on this.
func (b Brand) HasCategory(name string) bool {
	for _, c := range b.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Categories every brand is expected to be able to fall back to or detect.
const (
	CategoryOther     = "Other"
	CategoryPoliceCam = "Police Cam Footage"
)

// DefaultBrandName is used when no brand preference has been stored.
const DefaultBrandName = "Aura"

var auraCategories = []CategoryDescription{
	{
		Name:        "Scambaiter",
		Description: "In this content category, YouTube creators entertain their audiences by calling professional scam call centers and waste their time or delete their files.",
	},
	{
		Name:        "Internet Reacts / Internet Gossip",
		Description: "In this content category, YouTube creators will watch the actions of celebrities, tv shows, movies, internet gossip, or other creators and then share their reaction.",
	},
	{
		Name:        "Politics / News (Left Wing)",
		Description: "In this content category, YouTube creators will create content about politics and the news. They will often be highly critical of conservative politics such as Donald Trump and Elon Musk.",
	},
	{
		Name:        "Politics / News (Right Wing)",
		Description: "In this content category, YouTube creators will create content about politics and the news. These creators love Donald Trump and Elon Musk and are highly critical of left wing politicians such as Bernie Sanders and Alexandria Ocasio-Cortez.",
	},
	{
		Name:        "True Crime or Mystery",
		Description: "In this content category, YouTube creators will tell stories about strange, dark, and mysterious topics such as murders and unsolved cases.",
	},
	{
		Name:        "Guns / Military",
		Description: "In this content category, YouTube creators will show themselves shooting guns or talking about their past experience in the military.",
	},
	{
		Name:        "Cars",
		Description: "In this content category, YouTube creators will document themselves working on cars or test driving and reviewing cars.",
	},
	{
		Name:        CategoryPoliceCam,
		Description: "In this content category, YouTube creators watch police body cam footage and provide their commentary",
	},
	{
		Name:        CategoryOther,
		Description: "If a content creator does not fit any of the categories above, consider them 'Other'.",
	},
}

var betterHelpCategories = []CategoryDescription{
	{
		Name:        "Female Lifestyle",
		Description: "Female Lifestyle is a content category where female creators share personal, day-to-day experiences centered around modern womanhood. Typical content includes fashion choices, daily routines, meal prep or what they eat in a day, makeup and skincare routines, apartment or home tours, and updates about their personal lives (e.g., moving, relationships, career changes). Videos often focus on themes of independence, self-care, personal growth, and navigating adult life as a woman. The tone is usually relatable, aspirational, or conversational, aiming to connect with viewers through authenticity and shared life stages. This category blends elements of vlog-style storytelling, beauty, wellness, and lifestyle advice.",
	},
	{
		Name:        "Male Lifestyle",
		Description: "Male Lifestyle is a content category where male creators share aspects of their personal lives, routines, and interests through vlog-style or commentary-driven videos centered on self-improvement, productivity, fitness, fashion, grooming, dating, or career growth. These creators often give advice, walk through their daily routines, show what they wear, how they train, how they structure their day, or speak about personal challenges and goals as men navigating adulthood. The focus is on sharing their perspective as modern men working to level up physically, mentally, and socially.",
	},
	{
		Name:        "Tarot / Spiritual",
		Description: "Tarot / Spiritual is a content category where creators guide viewers through topics like tarot readings, astrology, manifestation, energy healing, and other spiritual or metaphysical practices. These creators often use tools like tarot cards, crystals, or astrology charts to help viewers gain insight into their emotions, relationships, or future. The tone is introspective, supportive, and focused on personal growth, healing, or spiritual awakening. Content is typically centered on intuition and helping others navigate life through a spiritual lens.",
	},
	{
		Name:        "Doctor / Healthcare Professional",
		Description: "Doctor / Healthcare Professional is a content category where licensed medical experts or healthcare professionals create educational content around physical and mental health, wellness, disease prevention, and medical myths. These creators often explain symptoms, break down medical studies, react to health trends from a clinical perspective, or share tips for healthier living. The content is authoritative, informative, and focused on improving the viewer's well-being through verified medical knowledge.",
	},
	{
		Name:        "Fitness",
		Description: "Fitness is a content category where creators focus on physical health, sharing workouts, training routines, nutrition advice, fitness challenges, and personal transformation journeys. These creators often walk viewers through exercises, explain fitness techniques, discuss gym culture, or offer motivation for building discipline and achieving physical goals. The content is action-oriented and centered on improving the body and mindset through consistent effort.",
	},
	{
		Name:        "True Crime / Mystery",
		Description: "True Crime / Mystery is a content category where creators research and narrate real-life cases involving crime, disappearances, unsolved mysteries, and disturbing events. These videos are often scripted, heavily researched, and focus on storytelling—walking viewers through timelines, suspects, evidence, and theories with a serious or investigative tone. The goal is to inform, engage curiosity, and sometimes seek justice or awareness.",
	},
	{
		Name:        "ASMR",
		Description: "ASMR (Autonomous Sensory Meridian Response) is a content category where creators use soft auditory and visual triggers to elicit a calming, tingling sensation in viewers. Common triggers include whispering, tapping, brushing, crinkling, and gentle hand movements, often recorded with high-sensitivity microphones for immersive sound. Creators frequently produce roleplay-style videos (e.g., spa visits, medical exams, or personal attention scenarios) that combine soothing tones with detailed, slow-paced interaction. The primary goals of ASMR content are to help viewers relax, fall asleep, reduce anxiety, or feel comforted. The genre is characterized by quiet, intimate production, and often includes visual close-ups and slow, deliberate actions.",
	},
	{
		Name:        "Internet Reacts / Internet Gossip",
		Description: "Internet Reacts / Internet Gossip is a content category where creators give their opinions, reactions, or commentary on trending internet topics, viral videos, influencer drama, celebrity news, or cultural moments. These videos are usually unscripted, personality-driven, and centered around the creator's take on events happening outside of their own life. The content is fast-paced, conversational, and focused on engaging with what's currently buzzing online.",
	},
	{
		Name:        "News/Politics",
		Description: "News / Politics is a content category where creators share commentary, analysis, or reporting on current events, political figures, legislation, social issues, or cultural debates. These creators often present content through a specific ideological lens—either left-leaning or right-leaning—and aim to inform, persuade, or provoke thought on real-world issues that impact society. Videos are usually research-based or opinion-driven, but rooted in actual news or policy.",
	},
	{
		Name:        "Movies / Film / Pop Culture",
		Description: "Movies / Film / Pop Culture is a content category where creators analyze, critique, or discuss films, TV shows, celebrity culture, and entertainment industry trends. These videos often include reviews, breakdowns of scenes or themes, rankings, or commentary on storytelling and character development. The focus is on structured media, not spontaneous viral content.",
	},
	{
		Name:        CategoryOther,
		Description: "If a content creator does not fit any of the categories above, consider them 'Other'.",
	},
}

var brands = []Brand{
	{Name: "Aura", Categories: auraCategories},
	{Name: "BetterHelp", Categories: betterHelpCategories},
}

// Brands returns all configured brand taxonomies in declaration order.
func Brands() []Brand {
	return brands
}

// BrandByName looks up a brand taxonomy, falling back to the default brand
// when the name is unknown or empty.
func BrandByName(name string) Brand {
	for _, b := range brands {
		if b.Name == name {
			return b
		}
	}
	return brands[0]
}
