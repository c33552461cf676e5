package catalog

// Asset URLs are built from a fixed host prefix and a size token per asset
// role. A null upstream path stays null in the projection.
const (
	imageBaseURL = "https://image.tmdb.org/t/p/"
	posterSize   = "w500"
	backdropSize = "w780"
	profileSize  = "h632"
)

func imageURL(size string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := imageBaseURL + size + *path
	return &u
}

func posterURL(path *string) *string   { return imageURL(posterSize, path) }
func backdropURL(path *string) *string { return imageURL(backdropSize, path) }
func profileURL(path *string) *string  { return imageURL(profileSize, path) }
