package view

// Column header of an admin list
type Column struct {
	Name    string
	Label   string
	SortURL string
	Sorted  bool
	Desc    bool
}

// Row of an admin list. Key is the encoded primary key.
type Row struct {
	Key       string
	Cells     []string
	EditURL   string
	DeleteURL string
}

// Pager links the pages of a list.
type Pager struct {
	Page    int
	Pages   int
	Total   int64
	PrevURL string
	NextURL string
}

// ModelLink is an entry of the admin index.
type ModelLink struct {
	Name  string
	URL   string
	Count int64
}

// AdminIndexPage lists the registered models.
type AdminIndexPage struct {
	Page
	Models []ModelLink
}

// AdminListPage renders the records of one model.
type AdminListPage struct {
	Page
	Model   string
	AddURL  string
	ListURL string
	Search  string
	Columns []Column
	Rows    []Row
	Pager   Pager
	Models  []ModelLink
}

// AdminEditPage renders the create or edit form of one model.
type AdminEditPage struct {
	Page
	Model     string
	ListURL   string
	DeleteURL string
	Form      *Form
	Models    []ModelLink
}
