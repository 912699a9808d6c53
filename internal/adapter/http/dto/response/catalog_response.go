package response

import "fieldops/internal/domain/entities"

// The catalog responses mirror the platform API shapes so the dashboard can
// consume the proxy and the origin interchangeably. The list key is always
// present, even when empty.

type ServiceCatalogResponse struct {
	Success  bool                      `json:"success"`
	Services []entities.CatalogService `json:"services"`
}

type AddonCatalogResponse struct {
	Success bool                      `json:"success"`
	Addons  []entities.CatalogService `json:"addons"`
}

func FromServices(services []entities.CatalogService) ServiceCatalogResponse {
	if services == nil {
		services = []entities.CatalogService{}
	}
	return ServiceCatalogResponse{Success: true, Services: services}
}

func FromAddons(addons []entities.CatalogService) AddonCatalogResponse {
	if addons == nil {
		addons = []entities.CatalogService{}
	}
	return AddonCatalogResponse{Success: true, Addons: addons}
}
