package constants

const (
	// Number of results in one page of every paginated search
	ADDRESS_PAGE_SIZE = 10

	// First page number, lower page numbers are normalized to it
	FIRST_PAGE = 1
)
