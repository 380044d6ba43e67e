package webpath

const (
	Home = "/"

	Api          = "/api"
	ApiDashboard = Api + "/dashboard"
	ApiRankings  = Api + "/rankings"
	ApiPlayer    = Api + "/players/:name"
	ApiPlayers   = Api + "/players/"
	ApiOptions   = Api + "/options"
	ApiReload    = Api + "/reload"
)

func Path() map[string]string {
	return map[string]string{
		"Home":         Home,
		"Api":          Api,
		"ApiDashboard": ApiDashboard,
		"ApiRankings":  ApiRankings,
		"ApiPlayers":   ApiPlayers,
		"ApiOptions":   ApiOptions,
		"ApiReload":    ApiReload,
	}
}
