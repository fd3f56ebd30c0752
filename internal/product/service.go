package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) ListByCategoryID(categoryID int) ([]Product, error) {
	return s.repo.ListByCategoryID(categoryID)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Product, error) {
	return s.repo.GetBySlug(slug)
}

func (s *Service) Featured(limit int) ([]Product, error) {
	return s.repo.Featured(limit)
}

func (s *Service) Latest(limit int) ([]Product, error) {
	return s.repo.Latest(limit)
}

func (s *Service) Random(limit int) ([]Product, error) {
	return s.repo.Random(limit)
}

func (s *Service) Related(categoryID int, excludeSlug string, limit int) ([]Product, error) {
	return s.repo.Related(categoryID, excludeSlug, limit)
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}
