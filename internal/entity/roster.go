package entity

// Реестр типов сущностей. Собирается один раз при загрузке пакета;
// генераторы и правила ссылаются на эти переменные напрямую.

// --- АРХИТЕКТУРА ---

var (
	StairsDown = NewType(LayerArchitecture, "stairs",
		Empty{},
		PortalDown{},
		Render{Sprite: '𝆲', Color: "stairs"})

	StairsUp = NewType(LayerArchitecture, "stairs",
		Empty{},
		PortalUp{},
		Render{Sprite: '𝆱', Color: "stairs"})

	CaveWall = NewType(LayerArchitecture, "wall",
		Solid{},
		Render{Sprite: ' ', Color: "default"})

	Wall = NewType(LayerArchitecture, "wall",
		Solid{},
		Render{Sprite: '▒', Color: "default"})

	Floor = NewType(LayerArchitecture, "dirt",
		Empty{},
		Render{Sprite: '·', Color: "floor"})

	Tree = NewType(LayerArchitecture, "tree",
		Solid{},
		Render{Sprite: '⯭', Color: "tree"})

	Grass = NewType(LayerArchitecture, "grass",
		Empty{},
		Render{Sprite: 'ʬ', Color: "grass"})

	CutGrass = NewType(LayerArchitecture, "freshly-cut grass",
		Empty{},
		Render{Sprite: '░', Color: "grass"})

	Dirt = NewType(LayerArchitecture, "dirt",
		Empty{},
		Render{Sprite: '░', Color: "dirt"})

	Door = NewType(LayerArchitecture, "door",
		DoorPhysics{},
		Openable{},
		Render{Sprite: '+', Color: "wood"})
)

// Стадии разрушения для декоративных развалин.
var (
	DecayWall0 = NewType(LayerArchitecture, "wall",
		Solid{}, Render{Sprite: '▒', Color: "decay0"})
	DecayWall1 = NewType(LayerArchitecture, "wall",
		Solid{}, Render{Sprite: '▒', Color: "decay1"})
	DecayWall2 = NewType(LayerArchitecture, "wall",
		Solid{}, Render{Sprite: '◾', Color: "decay2"})
	DecayWall3 = NewType(LayerArchitecture, "wall",
		Solid{}, Render{Sprite: '◾', Color: "decay3"})

	DecayFloor0 = NewType(LayerArchitecture, "floor",
		Empty{}, Render{Sprite: '.', Color: "decay1"})
	DecayFloor1 = NewType(LayerArchitecture, "floor",
		Empty{}, Render{Sprite: ',', Color: "decay2"})
	DecayFloor2 = NewType(LayerArchitecture, "floor",
		Empty{}, Render{Sprite: ';', Color: "decay3"})
	DecayFloor3 = NewType(LayerArchitecture, "floor",
		Empty{}, Render{Sprite: '⁖', Color: "decay3"})
)

// Разрушаемые развалины: глиф зависит от оставшегося здоровья.
var (
	Ruin = NewType(LayerArchitecture, "ruined wall",
		Solid{},
		Breakable{Health: 10},
		NewHealthRender(
			RenderChoice{Weight: 1, Sprite: '◾', Color: "decay3"},
			RenderChoice{Weight: 1, Sprite: '◾', Color: "decay2"},
			RenderChoice{Weight: 1, Sprite: '▒', Color: "decay1"},
			RenderChoice{Weight: 1, Sprite: '▒', Color: "decay0"},
		))

	Rubble = NewType(LayerArchitecture, "rubble",
		Empty{},
		Breakable{Health: 10},
		NewHealthRender(
			RenderChoice{Weight: 1, Sprite: '⁖', Color: "decay3"},
			RenderChoice{Weight: 1, Sprite: ';', Color: "decay3"},
			RenderChoice{Weight: 1, Sprite: ',', Color: "decay2"},
			RenderChoice{Weight: 1, Sprite: '.', Color: "decay1"},
		))
)

// --- СУЩЕСТВА ---

var (
	Player = NewType(LayerCreature, "you",
		Solid{},
		Container{},
		Combatant{Health: 10, Strength: 3},
		PlayerBrain{},
		Render{Sprite: '☻', Color: "player"})

	Salamango = NewType(LayerCreature, "salamango",
		Solid{},
		Container{},
		Combatant{Health: 5, Strength: 1},
		GenericAI{},
		Render{Sprite: ':', Color: "salamango"})
)

// --- ПРЕДМЕТЫ ---

var (
	Gem = NewType(LayerItem, "gemstone",
		Portable{},
		Render{Sprite: '♦', Color: "default"})

	Potion = NewType(LayerItem, "potion",
		Portable{},
		Render{Sprite: 'ð', Color: "default"})

	Crate = NewType(LayerItem, "crate",
		Portable{},
		Container{},
		Render{Sprite: '▥', Color: "wood"})

	Armor = NewType(LayerItem, "armor",
		Portable{},
		Equipment{Modifiers: []Modifier{{Stat: StatStrength, Add: 3}}},
		Render{Sprite: '[', Color: "default"})
)
