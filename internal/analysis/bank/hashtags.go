package bank

import "github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"

var hashtags = map[domain.Theme]map[domain.Platform][][]string{
	domain.ThemeSunset: {
		domain.PlatformInstagram: {
			{"#sunset", "#sunsetlovers", "#goldenhour", "#sunsetphotography", "#skyporn"},
			{"#sunsetvibes", "#eveningsky", "#sunsetoftheday", "#beautifulsky", "#naturelover"},
			{"#sunsetmagic", "#skylovers", "#dusk", "#sunsetbeach", "#sunsetsky"},
		},
		domain.PlatformFacebook: {
			{"#Sunset", "#NatureLovers", "#EveningVibes", "#BeautifulSky", "#Grateful"},
			{"#SunsetView", "#NaturesBeauty", "#GoldenHour", "#SkyColors", "#Blessed"},
			{"#SunsetPhotography", "#PeacefulMoments", "#EveningGlow", "#NaturePhotography", "#Thankful"},
		},
		domain.PlatformLinkedIn: {
			{"#Reflection", "#NewBeginnings", "#GrowthMindset", "#Leadership", "#Inspiration"},
			{"#WorkLifeBalance", "#Perspective", "#Success", "#Motivation", "#MindfulLeadership"},
			{"#ProfessionalGrowth", "#Gratitude", "#LeadershipLessons", "#CareerDevelopment", "#Wisdom"},
		},
	},
	domain.ThemeOcean: {
		domain.PlatformInstagram: {
			{"#ocean", "#beach", "#sea", "#beachlife", "#oceanlover"},
			{"#beachvibes", "#seaside", "#coastalliving", "#beachday", "#oceanview"},
			{"#saltlife", "#beachbum", "#waves", "#bluewater", "#beachtherapy"},
		},
		domain.PlatformFacebook: {
			{"#Beach", "#Ocean", "#BeachLife", "#VitaminSea", "#BeachDay"},
			{"#OceanVibes", "#CoastalLiving", "#BeachLove", "#SeaBreeze", "#BeachTime"},
			{"#BeachTherapy", "#OceanView", "#SaltWater", "#CoastalLife", "#SeaLife"},
		},
		domain.PlatformLinkedIn: {
			{"#WorkLifeBalance", "#Flexibility", "#Adaptation", "#Leadership", "#Strategy"},
			{"#BusinessStrategy", "#Innovation", "#Resilience", "#GrowthMindset", "#Success"},
			{"#StrategicThinking", "#ProfessionalDevelopment", "#Balance", "#Clarity", "#Focus"},
		},
	},
	domain.ThemeNature: {
		domain.PlatformInstagram: {
			{"#nature", "#naturelover", "#outdoors", "#naturephotography", "#wilderness"},
			{"#naturelovers", "#getoutside", "#exploremore", "#adventuretime", "#naturegram"},
			{"#intonature", "#outdoorlife", "#scenic", "#landscapephotography", "#mountains"},
		},
		domain.PlatformFacebook: {
			{"#Nature", "#OutdoorLife", "#NatureLovers", "#FreshAir", "#PeacefulPlace"},
			{"#NatureTherapy", "#Outdoors", "#BeautifulNature", "#Explore", "#Adventure"},
			{"#NaturePhotography", "#Scenic", "#Wilderness", "#GetOutside", "#NaturalBeauty"},
		},
		domain.PlatformLinkedIn: {
			{"#WorkLifeBalance", "#Mindfulness", "#Productivity", "#WellBeing", "#Leadership"},
			{"#SelfCare", "#MentalHealth", "#Success", "#ProfessionalDevelopment", "#Creativity"},
			{"#StrategicThinking", "#Innovation", "#GrowthMindset", "#Performance", "#Focus"},
		},
	},
	domain.ThemeFood: {
		domain.PlatformInstagram: {
			{"#foodie", "#foodporn", "#delicious", "#foodstagram", "#yummy"},
			{"#foodlover", "#instafood", "#foodphotography", "#foodgasm", "#tasty"},
			{"#foodblogger", "#foodiesofinstagram", "#foodheaven", "#eatgood", "#foodlove"},
		},
		domain.PlatformFacebook: {
			{"#Foodie", "#Delicious", "#FoodLover", "#GoodFood", "#Yummy"},
			{"#FoodTime", "#TastyFood", "#FoodPorn", "#EatingGood", "#FoodLife"},
			{"#FoodPhotography", "#ComfortFood", "#FoodHeaven", "#EatWell", "#FoodAdventures"},
		},
		domain.PlatformLinkedIn: {
			{"#BusinessLunch", "#Networking", "#ClientMeeting", "#WorkLifeBalance", "#Hospitality"},
			{"#BusinessDinner", "#ProfessionalNetworking", "#ClientRelations", "#Partnership", "#Success"},
			{"#CorporateCulture", "#TeamBuilding", "#BusinessEtiquette", "#Collaboration", "#Leadership"},
		},
	},
	domain.ThemePeople: {
		domain.PlatformInstagram: {
			{"#friends", "#friendship", "#goodvibes", "#memories", "#blessed"},
			{"#squadgoals", "#besties", "#friendshipgoals", "#together", "#happy"},
			{"#friendship", "#squad", "#grateful", "#positivevibes", "#goodtimes"},
		},
		domain.PlatformFacebook: {
			{"#Friends", "#Blessed", "#GoodTimes", "#Memories", "#Grateful"},
			{"#Friendship", "#Community", "#Together", "#FamilyAndFriends", "#LifeIsGood"},
			{"#BlessedLife", "#GoodCompany", "#Thankful", "#FriendshipGoals", "#HappyMoments"},
		},
		domain.PlatformLinkedIn: {
			{"#Teamwork", "#Collaboration", "#Networking", "#ProfessionalGrowth", "#Success"},
			{"#Leadership", "#TeamBuilding", "#Partnership", "#BusinessSuccess", "#Together"},
			{"#ProfessionalNetwork", "#Synergy", "#TeamSuccess", "#CollaborativeLeadership", "#Excellence"},
		},
	},
	domain.ThemeAnimal: {
		domain.PlatformInstagram: {
			{"#pet", "#petsofinstagram", "#cute", "#adorable", "#petstagram"},
			{"#petlove", "#furbaby", "#petlife", "#cutepets", "#petlover"},
			{"#petsagram", "#instapet", "#petsofig", "#cuteness", "#petoftheday"},
		},
		domain.PlatformFacebook: {
			{"#Pets", "#PetLove", "#FurryFriends", "#PetLife", "#AnimalLove"},
			{"#Cute", "#Adorable", "#PetParent", "#FurBaby", "#PetsOfFacebook"},
			{"#AnimalLovers", "#PetFamily", "#FurryFamily", "#PetPhotography", "#Cuteness"},
		},
		domain.PlatformLinkedIn: {
			{"#WorkLifeBalance", "#PetFriendlyWorkplace", "#CompanyCulture", "#EmployeeWellness", "#Innovation"},
			{"#PetPolicy", "#WorkplaceWellness", "#EmployeeBenefits", "#ModernWorkplace", "#Success"},
			{"#Leadership", "#TeamMorale", "#WorkplaceCulture", "#EmployeeEngagement", "#HRInnovation"},
		},
	},
	domain.ThemeCity: {
		domain.PlatformInstagram: {
			{"#city", "#citylife", "#urban", "#citylights", "#urbanphotography"},
			{"#cityscape", "#urbanlife", "#cityphotography", "#streetphotography", "#cityvibes"},
			{"#urbanexplorer", "#cityliving", "#cityview", "#downtown", "#metropolis"},
		},
		domain.PlatformFacebook: {
			{"#City", "#CityLife", "#Urban", "#CityVibes", "#UrbanLife"},
			{"#CityLiving", "#UrbanExplorer", "#CityScape", "#Downtown", "#MetroLife"},
			{"#CityPhotography", "#UrbanAdventure", "#CityLights", "#StreetScene", "#UrbanCulture"},
		},
		domain.PlatformLinkedIn: {
			{"#UrbanInnovation", "#CityDevelopment", "#BusinessHub", "#Networking", "#Career"},
			{"#UrbanEconomy", "#MetropolitanBusiness", "#Innovation", "#Entrepreneurship", "#Success"},
			{"#CityLeadership", "#UrbanStrategy", "#BusinessDistrict", "#ProfessionalGrowth", "#Opportunity"},
		},
	},
	domain.ThemeSky: {
		domain.PlatformInstagram: {
			{"#sky", "#skyporn", "#clouds", "#bluesky", "#skylovers"},
			{"#cloudporn", "#skyscape", "#skyphotography", "#beautifulsky", "#skyview"},
			{"#cloudscape", "#skyline", "#cloudy", "#skycolors", "#skies"},
		},
		domain.PlatformFacebook: {
			{"#Sky", "#Clouds", "#BlueSky", "#BeautifulSky", "#Nature"},
			{"#SkyView", "#CloudPhotography", "#SkyLovers", "#CloudyDay", "#NatureLovers"},
			{"#SkyScape", "#CloudFormation", "#WeatherPhotography", "#Skies", "#Atmosphere"},
		},
		domain.PlatformLinkedIn: {
			{"#BigPictureThinking", "#Vision", "#Leadership", "#Strategy", "#Innovation"},
			{"#StrategicPlanning", "#BusinessVision", "#FutureThinking", "#Growth", "#Success"},
			{"#LeadershipVision", "#Perspective", "#Strategic", "#Forward Thinking", "#Excellence"},
		},
	},
	domain.ThemeNight: {
		domain.PlatformInstagram: {
			{"#night", "#nightlife", "#nightphotography", "#nighttime", "#nightvibes"},
			{"#nightsky", "#nightout", "#nightcity", "#nightlights", "#afterdark"},
			{"#nightowl", "#nightscene", "#eveningvibes", "#nightview", "#nightshot"},
		},
		domain.PlatformFacebook: {
			{"#Night", "#NightLife", "#NightTime", "#EveningVibes", "#NightOut"},
			{"#NightSky", "#Nighttime", "#AfterDark", "#NightPhotography", "#NightView"},
			{"#NightScene", "#LateNight", "#NightAdventures", "#NightMood", "#Moonlight"},
		},
		domain.PlatformLinkedIn: {
			{"#Innovation", "#Dedication", "#WorkEthic", "#Entrepreneurship", "#HustleHard"},
			{"#LateNightWork", "#Commitment", "#Success", "#GoalOriented", "#Achievement"},
			{"#ProfessionalDedication", "#WorkLifeIntegration", "#DrivenToSucceed", "#Excellence", "#Leadership"},
		},
	},
	domain.ThemeBright: {
		domain.PlatformInstagram: {
			{"#bright", "#sunshine", "#sunny", "#brighdays", "#positivevibes"},
			{"#brightcolors", "#vibrant", "#colorful", "#sunnydays", "#happiness"},
			{"#brightandbeautiful", "#sunlight", "#brightenergy", "#glowing", "#radiant"},
		},
		domain.PlatformFacebook: {
			{"#Bright", "#Sunshine", "#SunnyDay", "#PositiveVibes", "#HappyDay"},
			{"#BrightDay", "#SunnyVibes", "#Cheerful", "#Happiness", "#GoodVibes"},
			{"#BrightAndBeautiful", "#Radiant", "#SunnyMood", "#PositiveEnergy", "#Joyful"},
		},
		domain.PlatformLinkedIn: {
			{"#PositiveLeadership", "#Optimism", "#Success", "#PositiveEnergy", "#Motivation"},
			{"#Leadership", "#Positivity", "#TeamMorale", "#SuccessMindset", "#Excellence"},
			{"#OptimisticLeader", "#PositiveImpact", "#Inspiration", "#GrowthMindset", "#Achievement"},
		},
	},
	domain.ThemeGeneral: {
		domain.PlatformInstagram: {
			{"#instagood", "#photooftheday", "#beautiful", "#picoftheday", "#instadaily"},
			{"#love", "#happy", "#life", "#style", "#inspiration"},
			{"#lifestyle", "#motivation", "#positivevibes", "#blessed", "#grateful"},
			{"#goodvibes", "#positivity", "#happiness", "#grateful", "#blessed"},
			{"#lifeisgood", "#enjoylife", "#liveyourbestlife", "#thankful", "#joy"},
			{"#moments", "#memories", "#lifeisbeautiful", "#inspirational", "#amazing"},
		},
		domain.PlatformFacebook: {
			{"#Happy", "#Blessed", "#Life", "#GoodVibes", "#Grateful"},
			{"#Beautiful", "#Inspiration", "#Positive", "#LifeIsGood", "#Thankful"},
			{"#Lifestyle", "#Motivation", "#Community", "#Happiness", "#BlessedLife"},
			{"#GoodDay", "#PositiveVibes", "#Gratitude", "#Blessed", "#Joy"},
			{"#Family", "#Friends", "#Love", "#Happiness", "#Memories"},
			{"#Thankful", "#LifeMoments", "#Inspiration", "#Community", "#Together"},
		},
		domain.PlatformLinkedIn: {
			{"#ProfessionalGrowth", "#Leadership", "#CareerDevelopment", "#Success", "#Motivation"},
			{"#Innovation", "#BusinessInsights", "#Entrepreneurship", "#GrowthMindset", "#Learning"},
			{"#ProfessionalDevelopment", "#Excellence", "#Achievement", "#CareerGoals", "#Leadership"},
			{"#Success", "#Growth", "#Career", "#Professional", "#Innovation"},
			{"#Business", "#WorkLife", "#Progress", "#Goals", "#Achievement"},
			{"#Learning", "#Development", "#Future", "#Opportunity", "#Excellence"},
		},
		domain.PlatformTwitter: {
			{"#life", "#goodvibes", "#blessed", "#happy", "#grateful"},
			{"#positivity", "#inspiration", "#motivation", "#success", "#lifestyle"},
			{"#moment", "#memories", "#happiness", "#joy", "#thankful"},
			{"#dailyvibes", "#positiveenergy", "#grateful", "#blessed", "#happy"},
			{"#lifemoments", "#goodday", "#inspiration", "#blessed", "#joy"},
			{"#thankful", "#happiness", "#goodvibes", "#positivity", "#life"},
		},
	},
}
