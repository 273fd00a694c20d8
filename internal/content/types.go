package content

// Site is the complete editable content of the site.
type Site struct {
	Landing Landing `validate:"required"`
	Resume  Resume  `validate:"required"`
}

// Link is a labelled target that came from content files.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required,safeurl"`
}

// Landing is the marketing page.
type Landing struct {
	Brand    Brand           `yaml:"brand" validate:"required"`
	Hero     Hero            `yaml:"hero" validate:"required"`
	Services ServicesSection `yaml:"services" validate:"required"`
	Work     WorkSection     `yaml:"work" validate:"required"`
	About    About           `yaml:"about" validate:"required"`
	CTA      CTA             `yaml:"cta" validate:"required"`
	Contact  Contact         `yaml:"contact" validate:"required"`
	Footer   Footer          `yaml:"footer" validate:"required"`
}

type Brand struct {
	Initials string `yaml:"initials" validate:"required,max=3"`
	Name     string `yaml:"name" validate:"required"`
}

type Hero struct {
	Headline        string `yaml:"headline" validate:"required"`
	Subheadline     string `yaml:"subheadline"`
	BackgroundImage string `yaml:"background_image" validate:"omitempty,safeurl"`
	PrimaryCTA      Link   `yaml:"primary_cta" validate:"required"`
	SecondaryCTA    Link   `yaml:"secondary_cta" validate:"required"`
}

type Service struct {
	Icon        string `yaml:"icon" validate:"required,icon"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

type ServicesSection struct {
	Heading string    `yaml:"heading" validate:"required"`
	Intro   string    `yaml:"intro"`
	Items   []Service `yaml:"items" validate:"required,min=1,dive"`
}

// Listing is one featured property. Price is in whole dollars.
type Listing struct {
	Title    string `yaml:"title" validate:"required"`
	Image    string `yaml:"image" validate:"required,safeurl"`
	ImageAlt string `yaml:"image_alt" validate:"required"`
	Price    int    `yaml:"price" validate:"gte=0"`
	Location string `yaml:"location" validate:"required"`
	Href     string `yaml:"href" validate:"required,safeurl"`
}

type WorkSection struct {
	Heading string    `yaml:"heading" validate:"required"`
	Intro   string    `yaml:"intro"`
	Items   []Listing `yaml:"items" validate:"required,min=1,dive"`
}

type About struct {
	Heading    string   `yaml:"heading" validate:"required"`
	Image      string   `yaml:"image" validate:"omitempty,safeurl"`
	ImageAlt   string   `yaml:"image_alt" validate:"required_with=Image"`
	Paragraphs []string `yaml:"paragraphs" validate:"required,min=1,dive,required"`
}

type CTA struct {
	Heading string `yaml:"heading" validate:"required"`
	Body    string `yaml:"body"`
	Phone   string `yaml:"phone" validate:"required"`
}

type Contact struct {
	Heading string `yaml:"heading" validate:"required"`
	Body    string `yaml:"body"`
	Phone   string `yaml:"phone" validate:"required"`
	Email   string `yaml:"email" validate:"required,email"`
}

type Footer struct {
	Owner string `yaml:"owner" validate:"required"`
}

// Resume is the digital résumé page.
type Resume struct {
	Initials    string       `yaml:"initials" validate:"required,max=3"`
	Name        string       `yaml:"name" validate:"required"`
	Title       string       `yaml:"title" validate:"required"`
	Location    string       `yaml:"location"`
	Email       string       `yaml:"email" validate:"required,email"`
	Summary     string       `yaml:"summary" validate:"required"`
	Socials     []Social     `yaml:"socials" validate:"dive"`
	Experience  []Role       `yaml:"experience" validate:"required,min=1,dive"`
	SkillGroups []SkillGroup `yaml:"skill_groups" validate:"dive"`
	Education   []Degree     `yaml:"education" validate:"dive"`
}

type Social struct {
	Label string `yaml:"label" validate:"required"`
	Icon  string `yaml:"icon" validate:"required,icon"`
	Href  string `yaml:"href" validate:"required,safeurl"`
}

type Role struct {
	Title      string   `yaml:"title" validate:"required"`
	Role       string   `yaml:"role" validate:"required"`
	Highlights []string `yaml:"highlights" validate:"dive,required"`
}

// SkillGroup accent selects one of the static class lists in the résumé page.
type SkillGroup struct {
	Name   string   `yaml:"name" validate:"required"`
	Accent string   `yaml:"accent" validate:"omitempty,oneof=blue indigo teal"`
	Skills []string `yaml:"skills" validate:"required,min=1,dive,required"`
}

type Degree struct {
	Degree      string `yaml:"degree" validate:"required"`
	Institution string `yaml:"institution" validate:"required"`
}
