package httpapi

import (
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/match"
	"github.com/goalzone-ng/goalzone-api/internal/domain/news"
	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
	"github.com/goalzone-ng/goalzone-api/internal/usecase"
)

const dateOnlyFormat = "2006-01-02"

type stadiumDTO struct {
	Name     string `json:"name" validate:"omitempty,max=120"`
	Capacity int    `json:"capacity" validate:"omitempty,min=0"`
	City     string `json:"city" validate:"omitempty,max=80"`
}

type colorsDTO struct {
	Primary   string `json:"primary" validate:"omitempty,max=40"`
	Secondary string `json:"secondary" validate:"omitempty,max=40"`
}

type coachDTO struct {
	Name        string `json:"name" validate:"omitempty,max=120"`
	Nationality string `json:"nationality" validate:"omitempty,max=80"`
	PhotoURL    string `json:"photoUrl" validate:"omitempty,url"`
}

type teamUpsertRequest struct {
	Name        string      `json:"name" validate:"required,max=120"`
	ShortName   string      `json:"shortName" validate:"required,max=5"`
	State       string      `json:"state" validate:"required"`
	FoundedYear int         `json:"foundedYear" validate:"omitempty,min=1900"`
	Stadium     *stadiumDTO `json:"stadium" validate:"omitempty"`
	Colors      *colorsDTO  `json:"colors" validate:"omitempty"`
	Coach       *coachDTO   `json:"coach" validate:"omitempty"`
	CaptainID   string      `json:"captainId"`
	LogoURL     string      `json:"logoUrl" validate:"omitempty,url"`
}

func (req teamUpsertRequest) toDomain() team.Team {
	item := team.Team{
		Name:        req.Name,
		ShortName:   req.ShortName,
		State:       team.State(req.State),
		FoundedYear: req.FoundedYear,
		CaptainID:   req.CaptainID,
		LogoURL:     req.LogoURL,
	}
	if req.Stadium != nil {
		item.Stadium = &team.Stadium{
			Name:     req.Stadium.Name,
			Capacity: req.Stadium.Capacity,
			City:     req.Stadium.City,
		}
	}
	if req.Colors != nil {
		item.Colors = &team.Colors{
			Primary:   req.Colors.Primary,
			Secondary: req.Colors.Secondary,
		}
	}
	if req.Coach != nil {
		item.Coach = &team.Coach{
			Name:        req.Coach.Name,
			Nationality: req.Coach.Nationality,
			PhotoURL:    req.Coach.PhotoURL,
		}
	}

	return item
}

type seasonRecordDTO struct {
	MatchesPlayed  int `json:"matchesPlayed"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	GoalsFor       int `json:"goalsFor"`
	GoalsAgainst   int `json:"goalsAgainst"`
	GoalDifference int `json:"goalDifference"`
	Points         int `json:"points"`
}

type teamDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ShortName   string          `json:"shortName"`
	State       string          `json:"state"`
	FoundedYear int             `json:"foundedYear,omitempty"`
	Stadium     *stadiumDTO     `json:"stadium,omitempty"`
	Colors      *colorsDTO      `json:"colors,omitempty"`
	Coach       *coachDTO       `json:"coach,omitempty"`
	CaptainID   string          `json:"captainId,omitempty"`
	LogoURL     string          `json:"logoUrl,omitempty"`
	Stats       seasonRecordDTO `json:"stats"`
	IsActive    bool            `json:"isActive"`
}

func teamToDTO(v team.Team) teamDTO {
	item := teamDTO{
		ID:          v.ID,
		Name:        v.Name,
		ShortName:   v.ShortName,
		State:       string(v.State),
		FoundedYear: v.FoundedYear,
		CaptainID:   v.CaptainID,
		LogoURL:     v.LogoURL,
		Stats:       seasonRecordToDTO(v.Stats),
		IsActive:    v.IsActive,
	}
	if v.Stadium != nil {
		item.Stadium = &stadiumDTO{
			Name:     v.Stadium.Name,
			Capacity: v.Stadium.Capacity,
			City:     v.Stadium.City,
		}
	}
	if v.Colors != nil {
		item.Colors = &colorsDTO{
			Primary:   v.Colors.Primary,
			Secondary: v.Colors.Secondary,
		}
	}
	if v.Coach != nil {
		item.Coach = &coachDTO{
			Name:        v.Coach.Name,
			Nationality: v.Coach.Nationality,
			PhotoURL:    v.Coach.PhotoURL,
		}
	}

	return item
}

func seasonRecordToDTO(v team.SeasonRecord) seasonRecordDTO {
	return seasonRecordDTO{
		MatchesPlayed:  v.MatchesPlayed,
		Wins:           v.Wins,
		Draws:          v.Draws,
		Losses:         v.Losses,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference(),
		Points:         v.Points,
	}
}

type injuryDTO struct {
	Description    string `json:"description" validate:"omitempty,max=300"`
	ExpectedReturn string `json:"expectedReturn" validate:"omitempty,datetime=2006-01-02"`
}

type playerUpsertRequest struct {
	TeamID         string     `json:"teamId" validate:"required"`
	FirstName      string     `json:"firstName" validate:"required,max=80"`
	LastName       string     `json:"lastName" validate:"required,max=80"`
	JerseyNumber   int        `json:"jerseyNumber" validate:"required,min=1,max=99"`
	Position       string     `json:"position" validate:"required"`
	Nationality    string     `json:"nationality" validate:"required,max=80"`
	DateOfBirth    string     `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	HeightCM       int        `json:"heightCm" validate:"omitempty,min=150,max=220"`
	WeightKG       int        `json:"weightKg" validate:"omitempty,min=50,max=120"`
	Bio            string     `json:"bio" validate:"omitempty,max=500"`
	MarketValue    int64      `json:"marketValue" validate:"omitempty,min=0"`
	ContractExpiry string     `json:"contractExpiry" validate:"omitempty,datetime=2006-01-02"`
	IsInjured      bool       `json:"isInjured"`
	Injury         *injuryDTO `json:"injury" validate:"omitempty"`
	PhotoURL       string     `json:"photoUrl" validate:"omitempty,url"`
}

func (req playerUpsertRequest) toDomain() player.Player {
	item := player.Player{
		TeamID:       req.TeamID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		JerseyNumber: req.JerseyNumber,
		Position:     player.Position(req.Position),
		Nationality:  req.Nationality,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		Bio:          req.Bio,
		MarketValue:  req.MarketValue,
		IsInjured:    req.IsInjured,
		PhotoURL:     req.PhotoURL,
	}
	if dob, err := time.Parse(dateOnlyFormat, req.DateOfBirth); err == nil {
		item.DateOfBirth = dob
	}
	if req.ContractExpiry != "" {
		if expiry, err := time.Parse(dateOnlyFormat, req.ContractExpiry); err == nil {
			item.ContractExpiry = &expiry
		}
	}
	if req.Injury != nil {
		injury := &player.InjuryDetails{Description: req.Injury.Description}
		if req.Injury.ExpectedReturn != "" {
			if ret, err := time.Parse(dateOnlyFormat, req.Injury.ExpectedReturn); err == nil {
				injury.ExpectedReturn = &ret
			}
		}
		item.Injury = injury
	}

	return item
}

type careerStatsDTO struct {
	Appearances   int `json:"appearances"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
	MinutesPlayed int `json:"minutesPlayed"`
}

type playerDTO struct {
	ID             string         `json:"id"`
	TeamID         string         `json:"teamId"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	FullName       string         `json:"fullName"`
	Age            *int           `json:"age,omitempty"`
	JerseyNumber   int            `json:"jerseyNumber"`
	Position       string         `json:"position"`
	Nationality    string         `json:"nationality"`
	DateOfBirth    string         `json:"dateOfBirth"`
	HeightCM       int            `json:"heightCm,omitempty"`
	WeightKG       int            `json:"weightKg,omitempty"`
	Bio            string         `json:"bio,omitempty"`
	Stats          careerStatsDTO `json:"stats"`
	MarketValue    int64          `json:"marketValue,omitempty"`
	ContractExpiry string         `json:"contractExpiry,omitempty"`
	IsActive       bool           `json:"isActive"`
	IsInjured      bool           `json:"isInjured"`
	Injury         *injuryDTO     `json:"injury,omitempty"`
	PhotoURL       string         `json:"photoUrl,omitempty"`
}

// playerToDTO derives fullName and age on the way out; neither is stored.
func playerToDTO(v player.Player, now time.Time) playerDTO {
	item := playerDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		FullName:     v.FullName(),
		JerseyNumber: v.JerseyNumber,
		Position:     string(v.Position),
		Nationality:  v.Nationality,
		DateOfBirth:  v.DateOfBirth.Format(dateOnlyFormat),
		HeightCM:     v.HeightCM,
		WeightKG:     v.WeightKG,
		Bio:          v.Bio,
		Stats: careerStatsDTO{
			Appearances:   v.Stats.Appearances,
			Goals:         v.Stats.Goals,
			Assists:       v.Stats.Assists,
			YellowCards:   v.Stats.YellowCards,
			RedCards:      v.Stats.RedCards,
			MinutesPlayed: v.Stats.MinutesPlayed,
		},
		MarketValue: v.MarketValue,
		IsActive:    v.IsActive,
		IsInjured:   v.IsInjured,
		PhotoURL:    v.PhotoURL,
	}
	if age, ok := v.Age(now); ok {
		item.Age = &age
	}
	if v.ContractExpiry != nil {
		item.ContractExpiry = v.ContractExpiry.Format(dateOnlyFormat)
	}
	if v.Injury != nil {
		injury := &injuryDTO{Description: v.Injury.Description}
		if v.Injury.ExpectedReturn != nil {
			injury.ExpectedReturn = v.Injury.ExpectedReturn.Format(dateOnlyFormat)
		}
		item.Injury = injury
	}

	return item
}

type matchUpsertRequest struct {
	Season     string `json:"season" validate:"required,max=20"`
	Matchday   int    `json:"matchday" validate:"required,min=1"`
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
	KickoffAt  string `json:"kickoffAt" validate:"required"`
	Venue      string `json:"venue" validate:"omitempty,max=160"`
	Status     string `json:"status" validate:"omitempty"`
}

func (req matchUpsertRequest) toDomain() match.Match {
	item := match.Match{
		Season:     req.Season,
		Matchday:   req.Matchday,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Venue:      req.Venue,
		Status:     match.Status(req.Status),
	}
	if kickoff, err := time.Parse(time.RFC3339, req.KickoffAt); err == nil {
		item.KickoffAt = kickoff
	}

	return item
}

type appearanceRequest struct {
	PlayerID      string `json:"playerId" validate:"required"`
	Goals         int    `json:"goals" validate:"omitempty,min=0"`
	Assists       int    `json:"assists" validate:"omitempty,min=0"`
	YellowCards   int    `json:"yellowCards" validate:"omitempty,min=0,max=2"`
	RedCards      int    `json:"redCards" validate:"omitempty,min=0,max=1"`
	MinutesPlayed int    `json:"minutesPlayed" validate:"omitempty,min=0,max=150"`
}

type matchResultRequest struct {
	HomeScore   int                 `json:"homeScore" validate:"min=0"`
	AwayScore   int                 `json:"awayScore" validate:"min=0"`
	Appearances []appearanceRequest `json:"appearances" validate:"omitempty,dive"`
}

func (req matchResultRequest) toDomain() match.Result {
	appearances := make([]player.AppearanceDelta, 0, len(req.Appearances))
	for _, a := range req.Appearances {
		appearances = append(appearances, player.AppearanceDelta{
			PlayerID:      a.PlayerID,
			Goals:         a.Goals,
			Assists:       a.Assists,
			YellowCards:   a.YellowCards,
			RedCards:      a.RedCards,
			MinutesPlayed: a.MinutesPlayed,
		})
	}

	return match.Result{
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
		Appearances: appearances,
	}
}

type matchDTO struct {
	ID         string `json:"id"`
	Season     string `json:"season"`
	Matchday   int    `json:"matchday"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	KickoffAt  string `json:"kickoffAt"`
	Venue      string `json:"venue,omitempty"`
	Status     string `json:"status"`
	HomeScore  int    `json:"homeScore"`
	AwayScore  int    `json:"awayScore"`
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:         v.ID,
		Season:     v.Season,
		Matchday:   v.Matchday,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		KickoffAt:  v.KickoffAt.UTC().Format(time.RFC3339),
		Venue:      v.Venue,
		Status:     string(v.Status),
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
	}
}

type newsUpsertRequest struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Summary       string   `json:"summary" validate:"omitempty,max=300"`
	Body          string   `json:"body" validate:"required"`
	Tags          []string `json:"tags" validate:"omitempty,max=10,dive,required,max=40"`
	CoverImageURL string   `json:"coverImageUrl" validate:"omitempty,url"`
	Published     bool     `json:"published"`
}

func (req newsUpsertRequest) toDomain() news.Article {
	return news.Article{
		Title:         req.Title,
		Summary:       req.Summary,
		Body:          req.Body,
		Tags:          req.Tags,
		CoverImageURL: req.CoverImageURL,
		Published:     req.Published,
	}
}

type newsDTO struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary,omitempty"`
	Body          string   `json:"body"`
	AuthorID      string   `json:"authorId"`
	Tags          []string `json:"tags,omitempty"`
	CoverImageURL string   `json:"coverImageUrl,omitempty"`
	Published     bool     `json:"published"`
	PublishedAt   string   `json:"publishedAt,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

func newsToDTO(v news.Article) newsDTO {
	item := newsDTO{
		ID:            v.ID,
		Title:         v.Title,
		Summary:       v.Summary,
		Body:          v.Body,
		AuthorID:      v.AuthorID,
		Tags:          v.Tags,
		CoverImageURL: v.CoverImageURL,
		Published:     v.Published,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     v.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if v.PublishedAt != nil {
		item.PublishedAt = v.PublishedAt.UTC().Format(time.RFC3339)
	}

	return item
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required,max=5000"`
}

type standingRowDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	ShortName      string `json:"shortName"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

func standingRowToDTO(v usecase.StandingRow) standingRowDTO {
	return standingRowDTO(v)
}
