package region

type regionRequest struct {
	WorldMapID  uint   `json:"world_map_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Path        string `json:"path"`
}
