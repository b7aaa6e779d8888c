// Package seed holds the initial catalogue and review dataset loaded by
// the seed command.
package seed

import (
	"moviedb-backend/domain/catalog"
	"moviedb-backend/domain/reviews"
)

// Movies is the initial movie catalogue
var Movies = []catalog.Movie{
	{
		ID:               1234,
		Title:            "Son of the Bride",
		OriginalTitle:    "El hijo de la novia",
		OriginalLanguage: "es",
		Adult:            false,
		Overview:         "At age 42, Rafael Belvedere is having a crisis. He lives in the shadow of his father and has lost touch with the simple pleasures of life.",
		ReleaseDate:      "2001-08-16",
		Popularity:       2.06,
		VoteAverage:      7.6,
		VoteCount:        89,
		GenreIDs:         []int{35, 18},
		BackdropPath:     "/srqUFKPLok92NYnhmGW2t2tNJBt.jpg",
		PosterPath:       "/hp9hfmLHmqzbKgrLPIKFlYXyZSc.jpg",
		Video:            false,
	},
	{
		ID:               2345,
		Title:            "The Grand Budapest Hotel",
		OriginalTitle:    "The Grand Budapest Hotel",
		OriginalLanguage: "en",
		Adult:            false,
		Overview:         "The adventures of Gustave H, a legendary concierge at a famous European hotel, and Zero Moustafa, the lobby boy who becomes his most trusted friend.",
		ReleaseDate:      "2014-02-26",
		Popularity:       14.8,
		VoteAverage:      8.0,
		VoteCount:        12430,
		GenreIDs:         []int{35, 18},
		BackdropPath:     "/xHDynSimjb25DFhdcS2W1JGGmJv.jpg",
		PosterPath:       "/eWdyYQreja6JGCzqHWXpWHDrrPo.jpg",
		Video:            false,
	},
	{
		ID:               3456,
		Title:            "Arrival",
		OriginalTitle:    "Arrival",
		OriginalLanguage: "en",
		Adult:            false,
		Overview:         "Taking place after alien crafts land around the world, an expert linguist is recruited by the military to determine whether they come in peace or are a threat.",
		ReleaseDate:      "2016-11-10",
		Popularity:       31.2,
		VoteAverage:      7.6,
		VoteCount:        16950,
		GenreIDs:         []int{18, 878},
		BackdropPath:     "/yIZ1xendyqKvY3FGeeUYUd5X9Mm.jpg",
		PosterPath:       "/x2FJsf1ElAgr63Y3PNPtJrcmpoe.jpg",
		Video:            false,
	},
	{
		ID:               4567,
		Title:            "Parasite",
		OriginalTitle:    "기생충",
		OriginalLanguage: "ko",
		Adult:            false,
		Overview:         "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks for their livelihood until they get entangled in an unexpected incident.",
		ReleaseDate:      "2019-05-30",
		Popularity:       83.9,
		VoteAverage:      8.5,
		VoteCount:        16430,
		GenreIDs:         []int{35, 53, 18},
		BackdropPath:     "/TU9NIjwzjoKPwQHoHshkFcQUCG.jpg",
		PosterPath:       "/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
		Video:            false,
	},
	{
		ID:               5678,
		Title:            "The Lighthouse",
		OriginalTitle:    "The Lighthouse",
		OriginalLanguage: "en",
		Adult:            false,
		Overview:         "Two lighthouse keepers try to maintain their sanity while living on a remote and mysterious New England island in the 1890s.",
		ReleaseDate:      "2019-10-18",
		Popularity:       26.5,
		VoteAverage:      7.5,
		VoteCount:        4560,
		GenreIDs:         []int{18, 14, 53},
		BackdropPath:     "/ihCzceY3HMka2wyzWkyzGzUNYvh.jpg",
		PosterPath:       "/4SzTY6xjCCC5pPNjMSjzzRmrzWG.jpg",
		Video:            false,
	},
}

// Cast is the initial cast list
var Cast = []catalog.CastMember{
	{MovieID: 1234, ActorName: "Ricardo Darín", RoleName: "Rafael Belvedere", RoleDescription: "restaurateur in crisis"},
	{MovieID: 1234, ActorName: "Héctor Alterio", RoleName: "Nino Belvedere", RoleDescription: "Rafael's father"},
	{MovieID: 1234, ActorName: "Norma Aleandro", RoleName: "Norma Belvedere", RoleDescription: "Rafael's mother"},
	{MovieID: 2345, ActorName: "Ralph Fiennes", RoleName: "Monsieur Gustave H.", RoleDescription: "legendary concierge"},
	{MovieID: 2345, ActorName: "Tony Revolori", RoleName: "Zero Moustafa", RoleDescription: "lobby boy"},
	{MovieID: 3456, ActorName: "Amy Adams", RoleName: "Louise Banks", RoleDescription: "linguist"},
	{MovieID: 3456, ActorName: "Jeremy Renner", RoleName: "Ian Donnelly", RoleDescription: "physicist"},
	{MovieID: 4567, ActorName: "Song Kang-ho", RoleName: "Ki-taek", RoleDescription: "father of the Kim family"},
	{MovieID: 4567, ActorName: "Choi Woo-shik", RoleName: "Ki-woo", RoleDescription: "son posing as a tutor"},
	{MovieID: 5678, ActorName: "Willem Dafoe", RoleName: "Thomas Wake", RoleDescription: "veteran lighthouse keeper"},
	{MovieID: 5678, ActorName: "Robert Pattinson", RoleName: "Ephraim Winslow", RoleDescription: "new keeper"},
}

// Reviews is the initial review set
var Reviews = []reviews.Review{
	{MovieID: 1234, ReviewerName: "Joe Bloggs", ReviewDate: "2022-10-10", Content: "A warm, unhurried film about making amends.", Rating: 8},
	{MovieID: 2345, ReviewerName: "Alice Broggs", ReviewDate: "2023-01-20", Content: "Every frame is a postcard. Fiennes is sublime.", Rating: 9},
	{MovieID: 3456, ReviewerName: "Joe Bloggs", ReviewDate: "2023-03-15", Content: "Patient science fiction that trusts its audience.", Rating: 9},
	{MovieID: 4567, ReviewerName: "Ivan Oranges", ReviewDate: "2023-05-27", Content: "Starts as a comedy, ends somewhere else entirely.", Rating: 10},
	{MovieID: 5678, ReviewerName: "Alice Broggs", ReviewDate: "2024-02-02", Content: "Two actors, one rock, total madness. Not for everyone.", Rating: 6},
}
