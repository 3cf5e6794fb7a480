package hierarchy

// LevelInfo names a hierarchy level and the roles expected to work it.
type LevelInfo struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

var levelInfos = map[int]LevelInfo{
	0: {Name: "Frontline Support", Roles: []string{"agent", "support"}},
	1: {Name: "Supervisor Level", Roles: []string{"supervisor", "team-lead"}},
	2: {Name: "Management Level", Roles: []string{"manager", "department-head"}},
	3: {Name: "Executive Level", Roles: []string{"executive", "ceo", "cto"}},
}

// Level returns the display info for a level.
func Level(level int) LevelInfo {
	if info, ok := levelInfos[level]; ok {
		return info
	}
	return LevelInfo{Name: "Unknown Level", Roles: []string{}}
}
