package reviews

// Review is a single reviewer's take on a movie. The store partitions
// reviews by MovieID; ReviewerName and ReviewDate form the qualifier axis
// that narrows lookups within a partition.
//
// Identity is (MovieID, ReviewerName, ReviewDate). Content and Rating are
// the only mutable attributes.
type Review struct {
	MovieID      int    `json:"movieId" dynamodbav:"MovieId" validate:"required"`
	ReviewerName string `json:"reviewerName" dynamodbav:"ReviewerName" validate:"required"`
	ReviewDate   string `json:"reviewDate,omitempty" dynamodbav:"ReviewDate" validate:"omitempty,datetime=2006-01-02"`
	Content      string `json:"content" dynamodbav:"Content" validate:"required"`
	Rating       int    `json:"rating" dynamodbav:"Rating" validate:"required,min=1,max=10"`
}

// ReviewPatch is the mutable attribute set an update writes and returns
type ReviewPatch struct {
	Content string `json:"content" dynamodbav:"Content" validate:"required"`
	Rating  int    `json:"rating" dynamodbav:"Rating" validate:"required,min=1,max=10"`
}

// Store attribute names. The plan builder emits these so the store layer
// and the record model cannot drift apart.
const (
	AttrMovieID      = "MovieId"
	AttrReviewerName = "ReviewerName"
	AttrReviewDate   = "ReviewDate"
	AttrContent      = "Content"
	AttrRating       = "Rating"
)
