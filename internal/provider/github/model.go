package github

// commitResponse is a single item of the GitHub "list commits" response.
type commitResponse struct {
	// SHA is the commit hash.
	SHA    string `json:"sha"`
	NodeID string `json:"node_id"`
	Commit commit `json:"commit"`
}

type commit struct {
	Author author `json:"author"`
	Tree   tree   `json:"tree"`
}

type author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
}

// tree is the commit tree reference, its SHA is not the commit SHA.
type tree struct {
	SHA string `json:"sha"`
	URL string `json:"url"`
}

// tagResponse is a single item of the GitHub "list tags" response.
type tagResponse struct {
	Name   string    `json:"name"`
	Commit tagCommit `json:"commit"`
}

type tagCommit struct {
	SHA string `json:"sha"`
	URL string `json:"url"`
}
