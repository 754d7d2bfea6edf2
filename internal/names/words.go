package names

// sci-fi and fantasy themed adjectives for table names
var tableAdjectives = []string{
	"Quantum", "Mystic", "Lunar", "Cursed", "Stellar", "Grim", "Rogue", "Shimmering", "Cyber", "Wild",
	"Frozen", "Ancient", "Nova", "Brave", "Warp", "Feral", "Glitch", "Hidden", "Cosmic", "Bold",
	"Nebulous", "Arcane", "Solar", "Haunted", "Galactic", "Dread", "Stealthy", "Radiant", "Digital", "Savage",
	"Icy", "Eternal", "Astral", "Valiant", "Twisted", "Primal", "Corrupted", "Veiled", "Celestial", "Fierce",
	"Plasma", "Enchanted", "Stellar", "Wicked", "Orbital", "Bleak", "Phantom", "Glowing", "Wired", "Untamed",
	"Chilled", "Timeless", "Ethereal", "Noble", "Distorted", "Beastly", "Hacked", "Shadowy", "Infinite", "Iron",
	"Laser", "Spectral", "Meteor", "Doomed", "Cosmo", "Forlorn", "Silent", "Blazing", "Neon", "Rugged",
	"Frosty", "Mythic", "Void", "Heroic", "Bent", "Frenzied", "Glitched", "Obscure", "Starry", "Steel",
	"Flux", "Runed", "Comet", "Fated", "Holo", "Gloomy", "Echoing", "Fiery", "Circuit", "Harsh",
	"Glacial", "Legendary", "Drifting", "Gallant", "Warped", "Monstrous", "Jammed", "Cloaked", "Luminous", "Tough",
	"Pulse", "Sorcerous", "Planetary", "Damned", "Astro", "Wretched", "Hushed", "Scorching", "Tech", "Brutal",
	"Polar", "Fabled", "Abyssal", "Stout", "Curved", "Rabid", "Bugged", "Secret", "Radiated", "Hard",
	"Sonic", "Charmed", "Gravitic", "Lost", "Nebula", "Dire", "Whispering", "Burning", "Nano", "Rough",
	"Snowy", "Epic", "Dimensional", "Vile", "Spatial", "Sorrowful", "Muted", "Flaming", "Micro", "Craggy",
	"Vortex", "Magic", "Ion", "Accursed", "Cosmic", "Mournful", "Faint", "Infernal", "Quantum", "Stony",
	"Thunder", "Bewitched", "Radial", "Ruined", "Stellar", "Desolate", "Quiet", "Smoldering", "Byte", "Jagged",
	"Blizzard", "Sacred", "Temporal", "Foul", "Aerial", "Woeful", "Still", "Ember", "Pixel", "Clad",
	"Shock", "Divine", "Chrono", "Tainted", "Sky", "Grieving", "Calm", "Ashen", "Data", "Boulder",
	"Wave", "Holy", "Phase", "Corrupt", "Cloud", "Bleak", "Silent", "Cinder", "Code", "Rock",
	"Blast", "Blessed", "Shift", "Dark", "Mist", "Lone", "Soft", "Charred", "Bit", "Stone",
	"Ray", "Pure", "Drift", "Evil", "Fog", "Lost", "Hushed", "Soot", "Chip", "Peak",
	"Spark", "True", "Flow", "Vicious", "Haze", "Stray", "Low", "Dust", "Core", "Ridge",
}

// sci-fi and fantasy themed nouns for table names
var tableNouns = []string{
	"Vortex", "Rune", "Drone", "Goblin", "Orbit", "Knight", "Nebula", "Witch", "Clone", "Realm",
	"Reactor", "Tower", "Void", "Ogre", "Beacon", "Scroll", "Flux", "Phoenix", "Matrix", "Titan",
	"Blaster", "Sword", "Probe", "Troll", "Galaxy", "Shield", "Cloud", "Sorcerer", "Droid", "Kingdom",
	"Core", "Castle", "Abyss", "Beast", "Signal", "Tome", "Pulse", "Dragon", "Grid", "Giant",
	"Laser", "Blade", "Bot", "Orc", "Star", "Armor", "Mist", "Mage", "Unit", "Empire",
	"Ray", "Axe", "Scout", "Fiend", "System", "Helm", "Veil", "Wizard", "Mech", "Domain",
	"Beam", "Spear", "Sensor", "Demon", "Cluster", "Crown", "Shroud", "Seer", "Rig", "Land",
	"Wave", "Staff", "Radar", "Ghoul", "Field", "Gauntlet", "Fog", "Cleric", "Frame", "Region",
	"Shock", "Bow", "Scan", "Imp", "Zone", "Plate", "Haze", "Druid", "Gear", "Territory",
	"Burst", "Hammer", "Relay", "Wraith", "Sector", "Chain", "Curtain", "Bard", "Device", "Plain",
	"Spark", "Lance", "Link", "Specter", "Rim", "Cloak", "Gloom", "Shaman", "Tool", "Valley",
	"Flare", "Mace", "Node", "Banshee", "Edge", "Robe", "Shadow", "Priest", "Engine", "Hill",
	"Bolt", "Dagger", "Port", "Vampire", "Expanse", "Mask", "Dark", "Monk", "Motor", "Cliff",
	"Surge", "Club", "Gate", "Skeleton", "Belt", "Hood", "Depth", "Ranger", "Unit", "Peak",
	"Charge", "Flail", "Hub", "Zombie", "Ring", "Veil", "Pit", "Thief", "System", "Ridge",
	"Flash", "Whip", "Dock", "Ghost", "Disk", "Cape", "Hole", "Rogue", "Circuit", "Slope",
	"Glow", "Trident", "Base", "Spirit", "Band", "Shawl", "Chasm", "Hunter", "Wire", "Crest",
	"Blast", "Scythe", "Tower", "Shade", "Loop", "Scarf", "Rift", "Scout", "Cable", "Mount",
	"Roar", "Pike", "Station", "Phantom", "Arc", "Glove", "Gulf", "Guard", "Line", "Summit",
	"Pulse", "Arrow", "Post", "Soul", "Span", "Boot", "Canyon", "Warrior", "Thread", "Spire",
}

// wrestling-inspired adjectives for player aliases
var playerAdjectives = []string{
	"Thunderous", "Glitzy", "Raging", "Savage", "Blazing", "Dazzling", "Furious", "Gargantuan", "Sly", "Brawny",
	"Electric", "Golden", "Wild", "Brutal", "Fiery", "Shiny", "Roaring", "Colossal", "Sneaky", "Mighty",
	"Booming", "Flashy", "Ferocious", "Gruesome", "Scorching", "Radiant", "Howling", "Titanic", "Crafty", "Bold",
	"Crashing", "Gleaming", "Vicious", "Hulking", "Burning", "Luminous", "Snarling", "Gigantic", "Cunning", "Iron",
	"Explosive", "Silver", "Rampaging", "Beastly", "Flaming", "Brilliant", "Growling", "Monstrous", "Tricky", "Steel",
	"Thundering", "Platinum", "Untamed", "Fearsome", "Smoldering", "Glinting", "Bellowing", "Enormous", "Devious", "Stout",
	"Blasting", "Diamond", "Frenzied", "Terrifying", "Ignited", "Sparkling", "Yelling", "Massive", "Wily", "Tough",
	"Rumbling", "Emerald", "Rabid", "Dreadful", "Sizzling", "Glowing", "Shouting", "Towering", "Shrewd", "Hard",
	"Smashing", "Ruby", "Chaos", "Grim", "Blistering", "Beaming", "Screaming", "Jumbo", "Clever", "Rough",
	"Banging", "Sapphire", "Mad", "Ghastly", "Torching", "Twinkling", "Roaring", "Huge", "Smart", "Rugged",
	"Clashing", "Onyx", "Insane", "Wicked", "Redhot", "Shimmering", "Blaring", "Giant", "Quick", "Craggy",
	"Slamming", "Jet", "Crazy", "Sinister", "Flaring", "Glittering", "Hollering", "Bulky", "Swift", "Jagged",
	"Pounding", "Crimson", "Lunatic", "Evil", "Charring", "Dancing", "Wailing", "Sturdy", "Fast", "Stony",
	"Crunching", "Azure", "Psycho", "Dark", "Melting", "Flickering", "Crying", "Solid", "Rapid", "Rocky",
	"Thumping", "Violet", "Manic", "Vile", "Boiling", "Shining", "Whistling", "Thick", "Nimble", "Boulder",
	"Bashing", "Indigo", "Wildcat", "Foul", "Steaming", "Glistening", "Chanting", "Broad", "Fleet", "Clad",
	"Whacking", "Bronze", "Berserk", "Nasty", "Heated", "Polished", "Calling", "Wide", "Zippy", "Peak",
	"Slapping", "Copper", "Freak", "Rotten", "Toasting", "Glossy", "Echoing", "Grand", "Speedy", "Ridge",
	"Kicking", "Ironclad", "Zany", "Crooked", "Roasting", "Bright", "Booming", "Vast", "Hasty", "Summit",
	"Punching", "Steely", "Goofy", "Twisted", "Baking", "Clear", "Ringing", "Large", "Brisk", "Spire",
	"Chopping", "Titanium", "Oddball", "Bent", "Frying", "Vivid", "Clanging", "Big", "Hurried", "Cliff",
}

// wrestling-inspired nouns for player aliases
var playerNouns = []string{
	"Mauler", "Viper", "Crusher", "Beast", "Blaster", "Ace", "Brawler", "Titan", "Fox", "Hawk",
	"Smasher", "Cobra", "Bruiser", "Monster", "Bomber", "King", "Fighter", "Giant", "Wolf", "Eagle",
	"Ripper", "Python", "Slammer", "Freak", "Cannon", "Chief", "Scrapper", "Colossus", "Tiger", "Raven",
	"Shredder", "Boa", "Pounder", "Fiend", "Rocket", "Boss", "Pugilist", "Goliath", "Lion", "Owl",
	"Slicer", "Rattler", "Basher", "Demon", "Missile", "Lord", "Boxer", "Behemoth", "Bear", "Falcon",
	"Chopper", "Mamba", "Thrasher", "Devil", "Torpedo", "Duke", "Wrestler", "Leviathan", "Panther", "Crow",
	"Cutter", "Asp", "Walloper", "Ogre", "Laser", "Prince", "Brawler", "Juggernaut", "Cougar", "Vulture",
	"Hacker", "Adder", "Batter", "Ghoul", "Pulse", "Baron", "Gladiator", "Mammoth", "Jaguar", "Hawk",
	"Dicer", "Serpent", "Clobber", "Wraith", "Beam", "Knight", "Contender", "Tank", "Leopard", "Buzzard",
	"Razor", "Viper", "Socker", "Banshee", "Ray", "Count", "Challenger", "Rhino", "Lynx", "Kite",
	"Slasher", "Sidewinder", "Whacker", "Phantom", "Bolt", "Earl", "Ringer", "Bull", "Cheetah", "Sparrow",
	"Blade", "Copperhead", "Smacker", "Specter", "Spark", "Squire", "Bruiser", "Bison", "Bobcat", "Lark",
	"Edge", "Racer", "Hammer", "Ghost", "Flash", "Master", "Thumper", "Ox", "Wildcat", "Finch",
	"Knife", "Stinger", "Puncher", "Shade", "Flare", "Captain", "Striker", "Moose", "Puma", "Wren",
	"Spike", "Hornet", "Kicker", "Spirit", "Glow", "General", "Hitter", "Elk", "Ocelot", "Dove",
	"Point", "Wasp", "Boot", "Soul", "Burst", "Colonel", "Slapper", "Deer", "Caracal", "Pigeon",
	"Claw", "Bee", "Leg", "Vampire", "Charge", "Major", "Knocker", "Stag", "Serval", "Crane",
	"Fang", "Scorpion", "Foot", "Zombie", "Surge", "Sergeant", "Banger", "Buck", "Margay", "Heron",
	"Tooth", "Dragonfly", "Shin", "Skeleton", "Shock", "Lieutenant", "Crasher", "Ram", "Cat", "Gull",
	"Horn", "Moth", "Knee", "Golem", "Wave", "Admiral", "Dasher", "Boar", "Tomcat", "Swan",
}
