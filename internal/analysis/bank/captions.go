package bank

import "github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"

var captions = map[domain.Theme]map[domain.Platform][]string{
	domain.ThemeSunset: {
		domain.PlatformInstagram: {
			"🌅 Chasing sunsets and capturing golden moments ✨ Every sunset is an opportunity to reset",
			"🧡 Painted skies and peaceful vibes 🌇 Mother Nature showing off her colors",
			"☀️ The sky broke like an egg into full sunset 🎨 These colors never get old",
		},
		domain.PlatformFacebook: {
			"Caught this breathtaking sunset tonight! 🌅 There's something magical about watching the day come to an end. What's the most beautiful sunset you've ever witnessed?",
			"Nature's daily masterpiece 🌇 Taking a moment to appreciate these stunning colors in the sky. Sunsets remind me to slow down and enjoy life's simple pleasures!",
			"The sky put on quite a show this evening! ☀️ Nothing beats ending the day with a view like this. Feeling grateful for another beautiful day!",
		},
		domain.PlatformLinkedIn: {
			"Leadership reflection: Just as every sunset marks an ending, it also promises a new dawn 🌅 Embracing transitions and new opportunities. #GrowthMindset #NewBeginnings",
			"Taking time to pause and reflect 🌇 The best strategies often come during moments of stillness. Balance is essential for sustained success. #WorkLifeBalance #Leadership",
			"Every ending is a new beginning ☀️ Lessons from nature on adaptation and transformation in business. #Innovation #ProfessionalGrowth",
		},
	},
	domain.ThemeOcean: {
		domain.PlatformInstagram: {
			"🌊 Salt in the air, sand in my hair, not a single care 💙 Ocean therapy is the best therapy",
			"🏖️ Beach state of mind activated ☀️ Vitamin sea does wonders for the soul",
			"💙 Lost at sea and loving every moment 🌅 The ocean is calling and I must go",
		},
		domain.PlatformFacebook: {
			"Perfect beach day! 🌊 There's nothing quite like the sound of waves and the feel of sand between your toes. Who else needs a beach day ASAP?",
			"Living that coastal life 🏖️ The ocean has a way of making all your worries disappear. Feeling blessed to be here!",
			"Beach vibes and good times! 💙 Can't beat a day by the water. What's your favorite beach activity?",
		},
		domain.PlatformLinkedIn: {
			"Strategic thinking requires fluidity like the ocean 🌊 Adapting to change while maintaining direction. #BusinessStrategy #Leadership",
			"Taking time to recharge by the water 🏖️ Studies show that blue spaces enhance creativity and reduce stress. #WorkLifeBalance #Productivity",
			"Lessons from the ocean: Be powerful yet flexible, constant yet ever-changing 💙 #Leadership #Innovation",
		},
	},
	domain.ThemeNature: {
		domain.PlatformInstagram: {
			"🌲 Into the forest I go, to lose my mind and find my soul 🍃 Nature is the best medicine",
			"🌿 Adventure awaits in every corner of this beautiful world 🏔️ Getting lost in nature",
			"💚 The mountains are calling and I must go ⛰️ Fresh air and amazing views",
		},
		domain.PlatformFacebook: {
			"Exploring the great outdoors today! 🌲 Sometimes you just need to disconnect from technology and reconnect with nature. What's your favorite hiking spot?",
			"Nature therapy at its finest 🌿 There's something incredibly peaceful about being surrounded by trees and fresh air. Feeling recharged!",
			"Adventures in the wilderness! 🏔️ Getting outside and enjoying the beauty of our planet. Who else loves nature?",
		},
		domain.PlatformLinkedIn: {
			"Taking time in nature boosts creativity and productivity by 50% 🌲 Investment in downtime pays dividends. #WorkLifeBalance #Productivity",
			"Best business insights happen away from the desk 🌿 Strategic thinking requires space and perspective. #Leadership #Innovation",
			"Lessons from nature: Stay grounded while reaching new heights 🏔️ #GrowthMindset #ProfessionalDevelopment",
		},
	},
	domain.ThemeFood: {
		domain.PlatformInstagram: {
			"🍽️ Good food = Good mood 😋 Living my best foodie life one bite at a time",
			"👨‍🍳 Food is the ingredient that binds us together 🤤 Made with love, shared with joy",
			"🥘 Life is too short for boring food ✨ Treating myself to something delicious",
		},
		domain.PlatformFacebook: {
			"Foodie moment alert! 🍽️ This looks too good not to share. What's your favorite comfort food?",
			"Treating myself today! 😋 There's something special about a really good meal. Who else is a food lover?",
			"Deliciousness on a plate! 👨‍🍳 Food brings people together and creates the best memories. What are you eating today?",
		},
		domain.PlatformLinkedIn: {
			"Business insight: Breaking bread builds bridges 🍽️ The best partnerships are forged over good meals. #Networking #ClientRelations",
			"Studies show shared meals increase team bonding by 35% 👨‍🍳 Food creates connection. #TeamBuilding #CorporateCulture",
			"Lessons from hospitality: Excellence in details creates memorable experiences 🥘 #Leadership #ClientSuccess",
		},
	},
	domain.ThemePeople: {
		domain.PlatformInstagram: {
			"💫 Surrounded by my favorite humans ✨ These are the moments that matter most",
			"😊 Squad goals achieved 🎉 Making memories with the best people",
			"💕 Good times + Crazy friends = Amazing memories 🌟 Living my best life",
		},
		domain.PlatformFacebook: {
			"Love these people! 💕 Feeling blessed to have such amazing friends in my life. Who's your favorite person to hang out with?",
			"Making memories with the best crew! 😊 Life is so much better when you're surrounded by good people.",
			"Great times with great people! 🌟 These are the moments I'll remember forever. Thankful for this squad!",
		},
		domain.PlatformLinkedIn: {
			"Teamwork makes the dream work 💼 Collaboration drives innovation and success. #TeamSuccess #Leadership",
			"Building meaningful professional relationships 🤝 Your network is your net worth. #Networking #Career Growth",
			"The power of diverse perspectives 💫 Together we achieve more. #CollaborativeLeadership #Innovation",
		},
	},
	domain.ThemeAnimal: {
		domain.PlatformInstagram: {
			"🐾 Unconditional love in its purest form 💕 My furry best friend",
			"😍 Who rescued who? 🥰 This little one makes every day better",
			"🐶 Life is better with a furry companion ✨ Pure joy on four paws",
		},
		domain.PlatformFacebook: {
			"Look at this cuteness! 🐾 My heart is full. Who else is a pet parent?",
			"Best friend goals! 💕 Animals make everything better. Share your pet photos!",
			"Nothing beats coming home to this face! 😍 Pets really are family members",
		},
		domain.PlatformLinkedIn: {
			"Studies show pets in the workplace reduce stress by 40% 🐾 Progressive companies embrace pet-friendly policies. #WorkLifeBalance #CompanyCulture",
			"Leadership lesson: Loyalty and authenticity never go out of style 💕 Lessons from our furry friends. #Leadership",
			"Work-life integration includes our four-legged family members 🐶 Pet-friendly workplaces attract top talent. #HRInnovation",
		},
	},
	domain.ThemeCity: {
		domain.PlatformInstagram: {
			"🏙️ City lights and urban nights ✨ Concrete jungle where dreams are made",
			"🌃 Getting lost in the city vibes 🚕 Every corner tells a story",
			"🏢 Urban explorer at heart 💫 The city never sleeps and neither do I",
		},
		domain.PlatformFacebook: {
			"City life in full swing! 🏙️ Love the energy and endless possibilities here. What's your favorite city?",
			"Urban adventures! 🌃 There's something special about the hustle and bustle of city streets.",
			"Exploring the concrete jungle! 🏢 Every city has its own unique character and charm",
		},
		domain.PlatformLinkedIn: {
			"Urban innovation drives economic growth 🏙️ Cities are laboratories for future business models. #Innovation #UrbanDevelopment",
			"Networking in the city that never sleeps 🌃 Opportunities are everywhere for those who seek them. #Networking #Career",
			"Metropolitan insights: Diversity sparks creativity and innovation 🏢 #BusinessStrategy #Leadership",
		},
	},
	domain.ThemeSky: {
		domain.PlatformInstagram: {
			"☁️ Head in the clouds, feet on the ground ✨ Sky gazing is my meditation",
			"🌤️ Every cloud has a silver lining 💙 Finding beauty above",
			"☀️ Blue skies and good vibes ✨ Looking up is always a good idea",
		},
		domain.PlatformFacebook: {
			"Beautiful sky today! ☁️ Sometimes we need to look up and appreciate the view. What's the weather like where you are?",
			"Sky watching therapy! 🌤️ Nature's canvas is always changing and always beautiful.",
			"Perfect sky perfect day! ☀️ Taking a moment to appreciate the little things",
		},
		domain.PlatformLinkedIn: {
			"Big picture thinking: Look up to see further 🌤️ Perspective changes everything in business. #Leadership #Vision",
			"Strategic planning requires seeing beyond the immediate ☁️ #BusinessStrategy #Innovation",
			"Sky's the limit when you dare to dream ☀️ #Motivation #ProfessionalGrowth",
		},
	},
	domain.ThemeNight: {
		domain.PlatformInstagram: {
			"✨ Night owl vibes activated 🌙 The stars are out and so am I",
			"🌃 City lights paint the night sky 💫 When the sun goes down, the magic begins",
			"🌙 Moonlight and good times ✨ Nights like these are everything",
		},
		domain.PlatformFacebook: {
			"Late night adventures! 🌙 There's something magical about the nighttime. Who else is a night owl?",
			"Night time is the right time! ✨ The world looks different when the sun goes down",
			"Under the stars tonight! 🌃 These peaceful moments are priceless",
		},
		domain.PlatformLinkedIn: {
			"Innovation happens at all hours 🌙 Some of the best ideas come after hours. #Innovation #Entrepreneurship",
			"Work-life integration means flexibility 🌃 Results matter more than the clock. #Leadership #ModernWorkplace",
			"Night shift warriors driving global business forward ✨ #Dedication #ProfessionalExcellence",
		},
	},
	domain.ThemeBright: {
		domain.PlatformInstagram: {
			"☀️ Sunshine state of mind 🌟 Bright days bright vibes",
			"✨ Let your light shine bright 💫 Radiating positive energy",
			"🌞 Bright and beautiful just like this day ☀️ Making the most of every moment",
		},
		domain.PlatformFacebook: {
			"What a beautiful bright day! ☀️ The sun is shining and life is good. How's everyone doing?",
			"Soaking up all this sunshine! 🌟 Days like this remind me to be grateful for everything",
			"Bright day, bright mood! ✨ Hope everyone is having an amazing day!",
		},
		domain.PlatformLinkedIn: {
			"Bringing bright energy to every project ☀️ Positive attitude drives positive results. #Leadership #Success",
			"Illuminate possibilities with optimistic leadership 🌟 #PositiveLeadership #TeamSuccess",
			"Shining a light on new opportunities 💫 #Innovation #Growth Mindset",
		},
	},
	domain.ThemeGeneral: {
		domain.PlatformInstagram: {
			"✨ Creating my own kind of magic 💫 Living life one moment at a time",
			"📸 Captured this special moment 🌟 Life is beautiful in unexpected ways",
			"💕 Grateful for days like these ✨ Making memories that last forever",
			"🌈 Finding beauty in every moment 🎨 Life is a canvas",
			"⭐ Making memories one day at a time 💫 Blessed beyond measure",
			"🎯 Living my best life ✨ Good vibes only",
		},
		domain.PlatformFacebook: {
			"Sharing a moment from today! 😊 Life is full of beautiful surprises. What made you smile today?",
			"Having a great day! 🌟 Taking time to appreciate all the good things in life",
			"Moments like these remind me how blessed I am! 💕 Hope everyone is doing wonderful!",
			"What a beautiful day! 🌈 Feeling grateful for all the little things",
			"Life is good! ✨ Taking time to appreciate the journey",
			"Blessed and grateful! 🙏 Every day is a gift",
		},
		domain.PlatformLinkedIn: {
			"Every experience is a learning opportunity 📈 Growth mindset in action. #ProfessionalDevelopment #CareerGrowth",
			"Reflecting on progress and planning next steps 🎯 Continuous improvement is the key. #Leadership #Success",
			"Finding inspiration in everyday moments 💡 Stay curious, stay growing. #Innovation #Learning",
			"Embracing challenges as opportunities 🚀 Growth happens outside comfort zones. #CareerDevelopment",
			"Progress over perfection 📊 Continuous learning drives success. #ProfessionalGrowth",
			"Innovation starts with curiosity 💭 Never stop learning. #Leadership #Growth",
		},
		domain.PlatformTwitter: {
			"Living my best life ✨ Every moment counts",
			"Good vibes only 🌟 Making today count",
			"Creating my own sunshine ☀️ Life is beautiful",
			"Grateful for this moment 💫 Life is good",
			"Making memories 📸 Living in the now",
			"Blessed beyond measure 🙏 Feeling thankful",
		},
	},
}
