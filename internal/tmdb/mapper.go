package tmdb

import (
	"fmt"

	"github.com/cinemate/cinemate/internal/domain"
)

// maxCastEntries caps the credits list mapped onto the detail view
const maxCastEntries = 12

func mapSummary(dto movieDTO) domain.MovieSummary {
	return domain.MovieSummary{
		ID:          dto.ID,
		Title:       dto.Title,
		Overview:    dto.Overview,
		PosterPath:  dto.PosterPath,
		ReleaseDate: dto.ReleaseDate,
		VoteAverage: dto.VoteAverage,
		Popularity:  dto.Popularity,
		GenreIDs:    dto.GenreIDs,
	}
}

func mapPage(resp movieListResponse) *domain.MoviePage {
	page := &domain.MoviePage{
		Page:         resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
		Results:      make([]domain.MovieSummary, 0, len(resp.Results)),
	}
	for _, dto := range resp.Results {
		page.Results = append(page.Results, mapSummary(dto))
	}
	return page
}

func mapDetail(dto movieDetailDTO) *domain.MovieDetail {
	detail := &domain.MovieDetail{
		MovieSummary: mapSummary(dto.movieDTO),
		Tagline:      dto.Tagline,
		Runtime:      dto.Runtime,
		Budget:       dto.Budget,
		Revenue:      dto.Revenue,
		IMDbID:       dto.IMDbID,
		TrailerURL:   trailerURL(dto.Videos),
	}

	for _, g := range dto.Genres {
		detail.Genres = append(detail.Genres, domain.Genre{ID: g.ID, Name: g.Name})
	}

	if dto.BelongsToCollection != nil {
		detail.BelongsTo = &domain.CollectionInfo{
			ID:         dto.BelongsToCollection.ID,
			Name:       dto.BelongsToCollection.Name,
			PosterPath: dto.BelongsToCollection.PosterPath,
		}
	}

	if dto.Credits != nil {
		for i, c := range dto.Credits.Cast {
			if i >= maxCastEntries {
				break
			}
			detail.Cast = append(detail.Cast, domain.CastMember{
				Name:        c.Name,
				Character:   c.Character,
				ProfilePath: c.ProfilePath,
			})
		}
	}

	return detail
}

func mapGenres(resp genreListResponse) []domain.Genre {
	genres := make([]domain.Genre, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres
}

// trailerURL picks the first official YouTube trailer, falling back to
// the first video of any kind.
func trailerURL(videos *videosDTO) string {
	if videos == nil || len(videos.Results) == 0 {
		return ""
	}

	pick := videos.Results[0]
	for _, v := range videos.Results {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			pick = v
			break
		}
	}

	if pick.Key == "" {
		return ""
	}
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", pick.Key)
}
